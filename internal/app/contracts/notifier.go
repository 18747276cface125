package contracts

import (
	"context"

	"authrelay-service/internal/pkg/dto/requests"
)

// NotifierService dispatches outbound chat commands to the platform worker.
type NotifierService interface {
	SendMessage(ctx context.Context, message *requests.OutboundMessage) error
}
