package utils

import (
	"strings"

	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
)

// ParseCallback decodes an interactive-control payload into its tagged form.
// Anything that is not a well-formed confirm/deny payload comes back Unknown;
// the caller decides the fallback.
func ParseCallback(data string) models.CallbackAction {
	switch {
	case strings.HasPrefix(data, constvars.CallbackLoginConfirmPrefix):
		alertID := strings.TrimPrefix(data, constvars.CallbackLoginConfirmPrefix)
		if alertID == "" {
			return models.CallbackAction{Kind: models.CallbackKindUnknown}
		}
		return models.CallbackAction{Kind: models.CallbackKindConfirm, AlertID: alertID}
	case strings.HasPrefix(data, constvars.CallbackLoginDenyPrefix):
		alertID := strings.TrimPrefix(data, constvars.CallbackLoginDenyPrefix)
		if alertID == "" {
			return models.CallbackAction{Kind: models.CallbackKindUnknown}
		}
		return models.CallbackAction{Kind: models.CallbackKindDeny, AlertID: alertID}
	default:
		return models.CallbackAction{Kind: models.CallbackKindUnknown}
	}
}
