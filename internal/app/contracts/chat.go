package contracts

import (
	"context"

	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/dto/requests"
)

type ChatStepRepository interface {
	// TryBegin opens the step only while none is open for the identity
	// and reports whether it did. Duplicate deliveries of the opening
	// command must not restart the answer window.
	TryBegin(ctx context.Context, step *models.ChatStep) (bool, error)
	// Get returns nil when no step is open or the stored one expired.
	Get(ctx context.Context, identity string) (*models.ChatStep, error)
	Clear(ctx context.Context, identity string) error
}

type ChatUsecase interface {
	HandleEvent(ctx context.Context, event *requests.ChatEvent) error
}
