package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/exceptions"
	"authrelay-service/internal/pkg/utils"
)

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) HandleEvent(w http.ResponseWriter, r *http.Request) {
	event := new(requests.ChatEvent)
	err := json.NewDecoder(r.Body).Decode(&event)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(event)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ChatUsecase.HandleEvent(ctx, event)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatEventHandledSuccessMessage, nil)
}
