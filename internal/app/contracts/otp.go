package contracts

import (
	"context"

	"authrelay-service/internal/app/models"
)

type OtpChallengeRepository interface {
	// Save overwrites any prior challenge for the same recipient.
	Save(ctx context.Context, challenge *models.OtpChallenge) error
	Find(ctx context.Context, recipient string) (*models.OtpChallenge, error)
	Delete(ctx context.Context, recipient string) error
}

type OtpUsecase interface {
	IssueOtp(ctx context.Context, recipient, purpose string) (*models.OtpChallenge, error)
	ValidateOtp(ctx context.Context, recipient, purpose, code string) error
}
