package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authrelay-service/internal/pkg/constvars"
)

func TestGenerateOTP(t *testing.T) {
	t.Run("Has Requested Length", func(t *testing.T) {
		otp, err := GenerateOTP(constvars.OTP_LENGTH)

		require.NoError(t, err)
		assert.Len(t, otp, constvars.OTP_LENGTH)
	})

	t.Run("Contains Only Digits", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			otp, err := GenerateOTP(constvars.OTP_LENGTH)
			require.NoError(t, err)

			for _, c := range otp {
				assert.True(t, c >= '0' && c <= '9', "otp %q contains non-digit %q", otp, c)
			}
		}
	})

	t.Run("Codes Vary Between Draws", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			otp, err := GenerateOTP(constvars.OTP_LENGTH)
			require.NoError(t, err)
			seen[otp] = true
		}

		assert.Greater(t, len(seen), 1, "20 draws should not all produce the same code")
	})
}

func TestGenerateRequestID(t *testing.T) {
	requestID := GenerateRequestID()

	assert.True(t, strings.HasPrefix(requestID, constvars.REQUEST_ID_PREFIX))
	assert.Greater(t, len(requestID), len(constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, requestID, GenerateRequestID())
}
