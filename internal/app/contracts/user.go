package contracts

import (
	"context"

	"authrelay-service/internal/app/models"
)

type UserLinkRepository interface {
	// EnsureContact upserts the link record for an identity on first
	// contact and refreshes the display name on later ones.
	EnsureContact(ctx context.Context, identity, displayName string) (*models.UserLink, error)
	UpdateStatus(ctx context.Context, identity, status string) error
}
