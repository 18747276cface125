package loginalert

import (
	"context"
	"fmt"
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

type loginAlertUsecase struct {
	SessionRepository contracts.LoginSessionRepository
	NotifierService   contracts.NotifierService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	loginAlertUsecaseInstance contracts.LoginAlertUsecase
	onceLoginAlertUsecase     sync.Once
)

func NewLoginAlertUsecase(
	sessionRepository contracts.LoginSessionRepository,
	notifierService contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LoginAlertUsecase {
	onceLoginAlertUsecase.Do(func() {
		loginAlertUsecaseInstance = &loginAlertUsecase{
			SessionRepository: sessionRepository,
			NotifierService:   notifierService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return loginAlertUsecaseInstance
}

func (uc *loginAlertUsecase) CreateLoginAlert(ctx context.Context, ownerIdentity string, loginContext models.LoginContext) (*models.LoginSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("loginAlertUsecase.CreateLoginAlert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, ownerIdentity),
	)

	alertID := utils.GenerateAlertID()
	now := time.Now()
	session := &models.LoginSession{
		AlertID:       alertID,
		OwnerIdentity: ownerIdentity,
		Context:       loginContext,
		Status:        models.LoginSessionStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(uc.InternalConfig.App.LoginAlertTTLInMinute) * time.Minute),
		MessageRef:    alertID,
	}

	// The store write is the source of truth and happens before dispatch.
	err := uc.SessionRepository.Create(ctx, session)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.CreateLoginAlert error persisting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	message := &requests.OutboundMessage{
		Type:      constvars.OutboundTypeSend,
		Recipient: ownerIdentity,
		Text: fmt.Sprintf(constvars.ChatLoginAlertMessageFormat,
			loginContext.IP,
			loginContext.Device,
			loginContext.Browser,
			loginContext.OS,
			loginContext.Location,
		),
		Buttons: []requests.OutboundButton{
			{Label: constvars.ChatConfirmButtonLabel, Data: constvars.CallbackLoginConfirmPrefix + alertID},
			{Label: constvars.ChatDenyButtonLabel, Data: constvars.CallbackLoginDenyPrefix + alertID},
		},
		Ref: session.MessageRef,
	}
	err = uc.NotifierService.SendMessage(ctx, message)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.CreateLoginAlert error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAlertIDKey, alertID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("loginAlertUsecase.CreateLoginAlert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAlertIDKey, alertID),
	)
	return session, nil
}

func (uc *loginAlertUsecase) ResolveLoginAlert(ctx context.Context, alertID, action, respondingIdentity string) (*contracts.LoginAlertResolution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("loginAlertUsecase.ResolveLoginAlert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAlertIDKey, alertID),
		zap.String(constvars.LoggingActionKey, action),
	)

	var targetStatus string
	switch action {
	case constvars.LoginAlertActionConfirm:
		targetStatus = models.LoginSessionStatusApproved
	case constvars.LoginAlertActionDeny:
		targetStatus = models.LoginSessionStatusDenied
	default:
		return nil, exceptions.ErrUnknownAction(action)
	}

	session, err := uc.SessionRepository.Find(ctx, alertID)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.ResolveLoginAlert error finding session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrLoginAlertNotFound(alertID)
	}

	if session.OwnerIdentity != respondingIdentity {
		return nil, exceptions.ErrNotSessionOwner(nil)
	}

	// Double taps land here: the status stands, nothing is re-sent.
	if session.Resolved() {
		uc.Log.Info("loginAlertUsecase.ResolveLoginAlert already resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAlertIDKey, alertID),
		)
		return &contracts.LoginAlertResolution{Status: session.Status, Idempotent: true}, nil
	}

	// Expired while pending: denied by timeout. Record the denial so a
	// still-racing confirm loses, retract the controls, refuse the action.
	if session.Expired(time.Now()) {
		casResult, err := uc.SessionRepository.ResolvePending(ctx, alertID, models.LoginSessionStatusDenied)
		if err != nil {
			return nil, err
		}
		if casResult == contracts.CASCommitted {
			uc.notifyResolved(ctx, session, constvars.ChatLoginExpiredMessage)
		}
		return nil, exceptions.ErrLoginAlertExpired(alertID)
	}

	casResult, err := uc.SessionRepository.ResolvePending(ctx, alertID, targetStatus)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.ResolveLoginAlert error committing transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	switch casResult {
	case contracts.CASAlreadyResolved:
		// Lost the race between Find and the transition. Re-read for the
		// winner's status and take the idempotent path.
		current, err := uc.SessionRepository.Find(ctx, alertID)
		if err != nil {
			return nil, err
		}
		status := targetStatus
		if current != nil {
			status = current.Status
		}
		return &contracts.LoginAlertResolution{Status: status, Idempotent: true}, nil
	case contracts.CASNotFound:
		return nil, exceptions.ErrLoginAlertNotFound(alertID)
	}

	terminalMessage := constvars.ChatLoginApprovedMessage
	if targetStatus == models.LoginSessionStatusDenied {
		terminalMessage = constvars.ChatLoginDeniedMessage
	}

	uc.notifyResolved(ctx, session, terminalMessage)

	uc.Log.Info("loginAlertUsecase.ResolveLoginAlert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAlertIDKey, alertID),
		zap.String("status", targetStatus),
	)
	return &contracts.LoginAlertResolution{Status: targetStatus}, nil
}

// notifyResolved edits the original alert in place so its stale controls
// disappear from the user's chat, then sends the terminal message. Runs only
// on the winning transition, so the terminal message goes out exactly once.
// Dispatch failures are logged and swallowed: the committed status is
// authoritative and a stale control is still refused by the backend.
func (uc *loginAlertUsecase) notifyResolved(ctx context.Context, session *models.LoginSession, terminalMessage string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	edit := &requests.OutboundMessage{
		Type:      constvars.OutboundTypeEdit,
		Recipient: session.OwnerIdentity,
		Text: fmt.Sprintf(constvars.ChatLoginAlertMessageFormat,
			session.Context.IP,
			session.Context.Device,
			session.Context.Browser,
			session.Context.OS,
			session.Context.Location,
		),
		Ref: session.MessageRef,
	}
	err := uc.NotifierService.SendMessage(ctx, edit)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.notifyResolved error editing original message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAlertIDKey, session.AlertID),
			zap.Error(err),
		)
	}

	terminal := &requests.OutboundMessage{
		Type:      constvars.OutboundTypeSend,
		Recipient: session.OwnerIdentity,
		Text:      terminalMessage,
	}
	err = uc.NotifierService.SendMessage(ctx, terminal)
	if err != nil {
		uc.Log.Error("loginAlertUsecase.notifyResolved error sending terminal message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAlertIDKey, session.AlertID),
			zap.Error(err),
		)
	}
}
