package router

import (
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/middleware"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
