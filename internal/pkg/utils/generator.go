package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"authrelay-service/internal/pkg/constvars"
)

// GenerateOTP draws each digit independently from crypto/rand so the
// distribution over codes is uniform.
func GenerateOTP(otpLength int) (string, error) {
	const otpDigits = "0123456789"
	max := big.NewInt(int64(len(otpDigits)))

	otp := make([]byte, otpLength)
	for i := range otp {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		otp[i] = otpDigits[num.Int64()]
	}

	return string(otp), nil
}

// GenerateAlertID produces the capability token identifying a login session.
// It is embedded in callback payloads, so collision or guessability would let
// a stranger resolve someone else's alert.
func GenerateAlertID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
