package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"authrelay-service/internal/app/config"
	"authrelay-service/internal/app/delivery/http/controllers"
	"authrelay-service/internal/app/delivery/http/middlewares"
	"authrelay-service/internal/pkg/dto/requests"
)

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) HandleEvent(ctx context.Context, event *requests.ChatEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newChatTestRouter(chatUsecase *MockChatUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}

	chatController := controllers.NewChatController(logger, chatUsecase)
	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachChatRoutes(router, middlewareInstance, chatController)
	return router
}

func postChatEvent(t *testing.T, router *chi.Mux, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/events", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestChatRouter_Events(t *testing.T) {
	t.Run("Valid Event", func(t *testing.T) {
		chatUsecase := new(MockChatUsecase)
		router := newChatTestRouter(chatUsecase)

		chatUsecase.On("HandleEvent", mock.Anything, mock.MatchedBy(func(event *requests.ChatEvent) bool {
			return event.SenderIdentity == "user-1" && event.Text == "link account"
		})).Return(nil)

		rr := postChatEvent(t, router, map[string]interface{}{
			"senderIdentity": "user-1",
			"displayName":    "Alice",
			"text":           "link account",
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"success"`)
		chatUsecase.AssertExpectations(t)
	})

	t.Run("Missing Sender Identity", func(t *testing.T) {
		chatUsecase := new(MockChatUsecase)
		router := newChatTestRouter(chatUsecase)

		rr := postChatEvent(t, router, map[string]interface{}{
			"text": "link account",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		chatUsecase.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		chatUsecase := new(MockChatUsecase)
		router := newChatTestRouter(chatUsecase)

		req := httptest.NewRequest("POST", "/events", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		chatUsecase.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
	})
}
