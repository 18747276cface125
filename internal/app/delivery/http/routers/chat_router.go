package routers

import (
	"github.com/go-chi/chi/v5"

	"authrelay-service/internal/app/delivery/http/controllers"
	"authrelay-service/internal/app/delivery/http/middlewares"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.Post("/events", chatController.HandleEvent)
}
