package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/pkg/constvars"
)

const testJWTSecret = "test-jwt-secret-12345"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthentication(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	}
	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	var capturedIdentity string
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedIdentity, _ = r.Context().Value(constvars.CONTEXT_CALLER_IDENTITY_KEY).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := middlewares.Authentication(testHandler)

	t.Run("Valid Token", func(t *testing.T) {
		capturedIdentity = ""
		token := signTestToken(t, testJWTSecret, jwt.MapClaims{
			"identity": "backend-admin",
			"exp":      time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "backend-admin", capturedIdentity, "caller identity should land on the context")
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Not A Bearer Scheme", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signTestToken(t, "some-other-secret", jwt.MapClaims{
			"identity": "backend-admin",
			"exp":      time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signTestToken(t, testJWTSecret, jwt.MapClaims{
			"identity": "backend-admin",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing Identity Claim", func(t *testing.T) {
		token := signTestToken(t, testJWTSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/actions/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not.a.jwt")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middlewares.RequestIDMiddleware(testHandler)

	t.Run("Generates Request ID When Absent", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/chat/events", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		requestID := rr.Header().Get(constvars.HeaderXRequestID)
		assert.NotEmpty(t, requestID)
		assert.Contains(t, requestID, constvars.REQUEST_ID_PREFIX)
	})

	t.Run("Propagates Incoming Request ID", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/chat/events", nil)
		req.Header.Set(constvars.HeaderXRequestID, "incoming-id-42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "incoming-id-42", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
