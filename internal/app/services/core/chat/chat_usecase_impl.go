package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/exceptions"
	"authrelay-service/internal/pkg/utils"
)

type chatUsecase struct {
	UserLinkRepository contracts.UserLinkRepository
	ChatStepRepository contracts.ChatStepRepository
	OtpUsecase         contracts.OtpUsecase
	LoginAlertUsecase  contracts.LoginAlertUsecase
	NotifierService    contracts.NotifierService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

func NewChatUsecase(
	userLinkRepository contracts.UserLinkRepository,
	chatStepRepository contracts.ChatStepRepository,
	otpUsecase contracts.OtpUsecase,
	loginAlertUsecase contracts.LoginAlertUsecase,
	notifierService contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{
			UserLinkRepository: userLinkRepository,
			ChatStepRepository: chatStepRepository,
			OtpUsecase:         otpUsecase,
			LoginAlertUsecase:  loginAlertUsecase,
			NotifierService:    notifierService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return chatUsecaseInstance
}

// HandleEvent routes one inbound user interaction. Failures surface to the
// user as plain-language replies, never as raw error codes.
func (uc *chatUsecase) HandleEvent(ctx context.Context, event *requests.ChatEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.HandleEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, event.SenderIdentity),
	)

	userLink, err := uc.UserLinkRepository.EnsureContact(ctx, event.SenderIdentity, event.DisplayName)
	if err != nil {
		uc.Log.Error("chatUsecase.HandleEvent error upserting user link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if userLink.Status == models.LinkStatusBlocked {
		uc.Log.Info("chatUsecase.HandleEvent dropping event from blocked identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityKey, event.SenderIdentity),
		)
		return nil
	}

	if event.CallbackData != "" {
		return uc.handleCallback(ctx, event)
	}
	return uc.handleText(ctx, event)
}

func (uc *chatUsecase) handleCallback(ctx context.Context, event *requests.ChatEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	action := utils.ParseCallback(event.CallbackData)
	if !action.Known() {
		return uc.reply(ctx, event.SenderIdentity, constvars.ChatHelpMessage)
	}

	resolveAction := constvars.LoginAlertActionConfirm
	if action.Kind == models.CallbackKindDeny {
		resolveAction = constvars.LoginAlertActionDeny
	}

	_, err := uc.LoginAlertUsecase.ResolveLoginAlert(ctx, action.AlertID, resolveAction, event.SenderIdentity)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			switch customErr.StatusCode {
			case constvars.StatusNotFound, constvars.StatusForbidden:
				return uc.reply(ctx, event.SenderIdentity, constvars.ChatAlertGoneMessage)
			case constvars.StatusGone:
				// The timeout denial already messaged the user.
				return nil
			}
		}
		uc.Log.Error("chatUsecase.handleCallback error resolving login alert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAlertIDKey, action.AlertID),
			zap.Error(err),
		)
		return err
	}

	// Side effects for both fresh and idempotent resolutions are owned by
	// the coordinator, nothing more to send here.
	return nil
}

func (uc *chatUsecase) handleText(ctx context.Context, event *requests.ChatEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	text := strings.ToLower(strings.TrimSpace(event.Text))

	step, err := uc.ChatStepRepository.Get(ctx, event.SenderIdentity)
	if err != nil {
		uc.Log.Error("chatUsecase.handleText error reading step marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if step != nil && step.Step == constvars.ChatStepAwaitingLinkCode {
		return uc.handleLinkCode(ctx, event, strings.TrimSpace(event.Text))
	}

	switch text {
	case constvars.ChatCommandStart, constvars.ChatCommandHelp:
		return uc.reply(ctx, event.SenderIdentity, constvars.ChatHelpMessage)
	case constvars.ChatCommandLink:
		now := time.Now()
		stepTTL := time.Duration(uc.InternalConfig.App.ChatStepTTLInMinute) * time.Minute
		opened, err := uc.ChatStepRepository.TryBegin(ctx, &models.ChatStep{
			Identity:  event.SenderIdentity,
			Step:      constvars.ChatStepAwaitingLinkCode,
			CreatedAt: now,
			ExpiresAt: now.Add(stepTTL),
		})
		if err != nil {
			uc.Log.Error("chatUsecase.handleText error opening step marker",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		if !opened {
			// A concurrent duplicate of the command already opened the
			// step; re-prompt without restarting its window.
			uc.Log.Info("chatUsecase.handleText step already open",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdentityKey, event.SenderIdentity),
			)
		}
		return uc.reply(ctx, event.SenderIdentity, constvars.ChatAskLinkCodeMessage)
	default:
		return uc.reply(ctx, event.SenderIdentity, constvars.ChatHelpMessage)
	}
}

// handleLinkCode consumes the open link step either way: a wrong code means
// starting over rather than a guessing loop.
func (uc *chatUsecase) handleLinkCode(ctx context.Context, event *requests.ChatEvent, code string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.ChatStepRepository.Clear(ctx, event.SenderIdentity)
	if err != nil {
		return err
	}

	err = uc.OtpUsecase.ValidateOtp(ctx, event.SenderIdentity, constvars.OtpPurposeLinkAccount, code)
	if err != nil {
		uc.Log.Info("chatUsecase.handleLinkCode link code rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityKey, event.SenderIdentity),
		)
		return uc.reply(ctx, event.SenderIdentity, constvars.ChatLinkFailedMessage)
	}

	err = uc.UserLinkRepository.UpdateStatus(ctx, event.SenderIdentity, models.LinkStatusLinked)
	if err != nil {
		uc.Log.Error("chatUsecase.handleLinkCode error updating link status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	return uc.reply(ctx, event.SenderIdentity, constvars.ChatLinkDoneMessage)
}

func (uc *chatUsecase) reply(ctx context.Context, recipient, text string) error {
	return uc.NotifierService.SendMessage(ctx, &requests.OutboundMessage{
		Type:      constvars.OutboundTypeSend,
		Recipient: recipient,
		Text:      text,
	})
}
