package routers

import (
	"github.com/go-chi/chi/v5"

	"authrelay-service/internal/app/delivery/http/controllers"
	"authrelay-service/internal/app/delivery/http/middlewares"
)

func attachActionRoutes(router chi.Router, middlewares *middlewares.Middlewares, actionController *controllers.ActionController) {
	router.With(middlewares.Authentication).Post("/", actionController.HandleAction)
}
