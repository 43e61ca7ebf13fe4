package router

import (
	"github.com/AndikaPrasetya/NadaMusik/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Post("/register", controllers.HandleRegister)
	app.Get("/activate/:token", controllers.HandleActivate)
	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", controllers.HandleLogout)

	// Course catalog is public so prospective students can browse
	app.Get("/courses", controllers.HandleListCourses)
	app.Get("/courses/:id", controllers.HandleGetCourse)
}
