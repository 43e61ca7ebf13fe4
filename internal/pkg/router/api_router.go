package router

import (
	"github.com/AndikaPrasetya/NadaMusik/app/controllers"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "NadaMusik API",
		})
	})

	// API v1: the student surface, session-authenticated
	v1 := api.Group("/v1", middleware.RequireAuth)
	v1.Get("/me", controllers.HandleMe)

	v1.Get("/enrollments", controllers.HandleListMyEnrollments)
	v1.Post("/enrollments", controllers.HandleEnroll)

	v1.Get("/bills", controllers.HandleListMyBills)
	v1.Get("/bills/:id", controllers.HandleGetMyBill)
	v1.Post("/bills/:id/pay", controllers.HandlePayBill)
	v1.Get("/bills/:id/status", controllers.HandleBillStatus)

	v1.Get("/schedule", controllers.HandleListMySchedule)

	v1.Get("/courses/:id/videos", controllers.HandleListCourseVideos)
	v1.Get("/videos/:id/playback", controllers.HandleVideoPlayback)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
