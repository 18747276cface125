package otp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/contracts"
	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
	"authrelay-service/internal/pkg/dto/requests"
	"authrelay-service/internal/pkg/exceptions"
	"authrelay-service/internal/pkg/utils"
)

type otpUsecase struct {
	OtpRepository   contracts.OtpChallengeRepository
	NotifierService contracts.NotifierService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	otpUsecaseInstance contracts.OtpUsecase
	onceOtpUsecase     sync.Once
)

func NewOtpUsecase(
	otpRepository contracts.OtpChallengeRepository,
	notifierService contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OtpUsecase {
	onceOtpUsecase.Do(func() {
		otpUsecaseInstance = &otpUsecase{
			OtpRepository:   otpRepository,
			NotifierService: notifierService,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return otpUsecaseInstance
}

// IssueOtp persists the challenge before dispatching it. A dispatch failure
// leaves a stored challenge the recipient never saw, which the TTL bounds.
func (uc *otpUsecase) IssueOtp(ctx context.Context, recipient, purpose string) (*models.OtpChallenge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.IssueOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, recipient),
		zap.String(constvars.LoggingPurposeKey, purpose),
	)

	code, err := utils.GenerateOTP(constvars.OTP_LENGTH)
	if err != nil {
		uc.Log.Error("otpUsecase.IssueOtp error generating code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrOTPGenerate(err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		uc.Log.Error("otpUsecase.IssueOtp error hashing code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrOTPHash(err)
	}

	ttlMinutes := uc.InternalConfig.App.OtpTTLInMinute
	now := time.Now()
	challenge := &models.OtpChallenge{
		Recipient: recipient,
		CodeHash:  string(codeHash),
		Purpose:   purpose,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(ttlMinutes) * time.Minute),
	}

	err = uc.OtpRepository.Save(ctx, challenge)
	if err != nil {
		uc.Log.Error("otpUsecase.IssueOtp error saving challenge",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	message := &requests.OutboundMessage{
		Type:      constvars.OutboundTypeSend,
		Recipient: recipient,
		Text:      fmt.Sprintf(constvars.ChatOTPMessageFormat, purpose, code, ttlMinutes),
	}
	err = uc.NotifierService.SendMessage(ctx, message)
	if err != nil {
		uc.Log.Error("otpUsecase.IssueOtp error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("otpUsecase.IssueOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, recipient),
	)
	return challenge, nil
}

func (uc *otpUsecase) ValidateOtp(ctx context.Context, recipient, purpose, code string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("otpUsecase.ValidateOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, recipient),
		zap.String(constvars.LoggingPurposeKey, purpose),
	)

	challenge, err := uc.OtpRepository.Find(ctx, recipient)
	if err != nil {
		uc.Log.Error("otpUsecase.ValidateOtp error finding challenge",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if challenge == nil {
		return exceptions.ErrOTPNotFound(nil)
	}

	// The store TTL usually evicts expired challenges, the explicit check
	// covers the window between logical and key expiry.
	if challenge.Expired(time.Now()) {
		uc.OtpRepository.Delete(ctx, recipient)
		return exceptions.ErrOTPExpired(nil)
	}

	if challenge.Purpose != purpose {
		return exceptions.ErrOTPInvalid(nil)
	}

	err = bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code))
	if err != nil {
		return exceptions.ErrOTPInvalid(err)
	}

	// Consume on success so a code can never be replayed.
	err = uc.OtpRepository.Delete(ctx, recipient)
	if err != nil {
		uc.Log.Error("otpUsecase.ValidateOtp error consuming challenge",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("otpUsecase.ValidateOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityKey, recipient),
	)
	return nil
}
