package contracts

import (
	"context"

	"authrelay-service/internal/app/models"
)

// CASResult reports the outcome of a conditional status transition.
type CASResult int

const (
	CASCommitted CASResult = iota
	CASAlreadyResolved
	CASNotFound
)

type LoginSessionRepository interface {
	Create(ctx context.Context, session *models.LoginSession) error
	Find(ctx context.Context, alertID string) (*models.LoginSession, error)
	// ResolvePending commits newStatus only while the stored status is
	// still pending. Exactly one of two racing callers gets CASCommitted.
	ResolvePending(ctx context.Context, alertID, newStatus string) (CASResult, error)
}

// LoginAlertResolution is what a resolve attempt observed. Idempotent marks
// the already-resolved path: the status stands but this call caused no side
// effects.
type LoginAlertResolution struct {
	Status     string
	Idempotent bool
}

type LoginAlertUsecase interface {
	CreateLoginAlert(ctx context.Context, ownerIdentity string, loginContext models.LoginContext) (*models.LoginSession, error)
	ResolveLoginAlert(ctx context.Context, alertID, action, respondingIdentity string) (*LoginAlertResolution, error)
}
