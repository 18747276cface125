package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/dto/responses"
	"authrelay-service/internal/pkg/exceptions"
	"authrelay-service/internal/pkg/utils"
)

type ActionController struct {
	Log               *zap.Logger
	OtpUsecase        contracts.OtpUsecase
	LoginAlertUsecase contracts.LoginAlertUsecase
	InternalConfig    *config.InternalConfig
}

func NewActionController(
	logger *zap.Logger,
	otpUsecase contracts.OtpUsecase,
	loginAlertUsecase contracts.LoginAlertUsecase,
	internalConfig *config.InternalConfig,
) *ActionController {
	return &ActionController{
		Log:               logger,
		OtpUsecase:        otpUsecase,
		LoginAlertUsecase: loginAlertUsecase,
		InternalConfig:    internalConfig,
	}
}

// HandleAction dispatches a website-originated request by its action tag.
func (ctrl *ActionController) HandleAction(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ActionRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	switch request.Action {
	case constvars.ActionSendOtp:
		ctrl.handleSendOtp(ctx, w, request)
	case constvars.ActionLoginAlert:
		ctrl.handleLoginAlert(ctx, w, request)
	default:
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownAction(request.Action))
	}
}

// handleSendOtp is the administrative issuance path: the caller identity on
// the token must match the configured administrator.
func (ctrl *ActionController) handleSendOtp(ctx context.Context, w http.ResponseWriter, request *requests.ActionRequest) {
	callerIdentity, _ := ctx.Value(constvars.CONTEXT_CALLER_IDENTITY_KEY).(string)
	if callerIdentity == "" || callerIdentity != ctrl.InternalConfig.App.AdminIdentity {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerNotAdministrator(nil))
		return
	}

	payload := new(requests.SendOtpPayload)
	err := json.Unmarshal(request.Payload, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	challenge, err := ctrl.OtpUsecase.IssueOtp(ctx, request.RecipientIdentity, payload.Purpose)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.OtpIssued{
		Recipient: challenge.Recipient,
		Purpose:   challenge.Purpose,
		ExpiresAt: challenge.ExpiresAt,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OtpIssuedSuccessMessage, response)
}

func (ctrl *ActionController) handleLoginAlert(ctx context.Context, w http.ResponseWriter, request *requests.ActionRequest) {
	payload := new(requests.LoginAlertPayload)
	err := json.Unmarshal(request.Payload, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	loginContext := models.LoginContext{
		IP:       payload.IP,
		Device:   payload.Device,
		Browser:  payload.Browser,
		OS:       payload.OS,
		Location: payload.Location,
	}

	session, err := ctrl.LoginAlertUsecase.CreateLoginAlert(ctx, request.RecipientIdentity, loginContext)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.LoginAlertCreated{
		AlertID:   session.AlertID,
		ExpiresAt: session.ExpiresAt,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginAlertCreatedSuccessMessage, response)
}
