package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"authrelay-service/internal/app/models"
	"authrelay-service/internal/pkg/constvars"
)

func TestParseCallback(t *testing.T) {
	t.Run("Confirm Payload", func(t *testing.T) {
		action := ParseCallback(constvars.CallbackLoginConfirmPrefix + "a1b2c3")

		assert.Equal(t, models.CallbackKindConfirm, action.Kind)
		assert.Equal(t, "a1b2c3", action.AlertID)
		assert.True(t, action.Known())
	})

	t.Run("Deny Payload", func(t *testing.T) {
		action := ParseCallback(constvars.CallbackLoginDenyPrefix + "a1b2c3")

		assert.Equal(t, models.CallbackKindDeny, action.Kind)
		assert.Equal(t, "a1b2c3", action.AlertID)
		assert.True(t, action.Known())
	})

	t.Run("Unknown Payload", func(t *testing.T) {
		action := ParseCallback("some_other_payload")

		assert.Equal(t, models.CallbackKindUnknown, action.Kind)
		assert.False(t, action.Known())
	})

	t.Run("Prefix Without Alert ID", func(t *testing.T) {
		action := ParseCallback(constvars.CallbackLoginConfirmPrefix)

		assert.Equal(t, models.CallbackKindUnknown, action.Kind)
		assert.False(t, action.Known())
	})

	t.Run("Empty Payload", func(t *testing.T) {
		action := ParseCallback("")

		assert.Equal(t, models.CallbackKindUnknown, action.Kind)
		assert.False(t, action.Known())
	})
}
