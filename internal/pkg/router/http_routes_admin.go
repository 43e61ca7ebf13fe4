package router

import (
	"github.com/AndikaPrasetya/NadaMusik/app/controllers"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/api", middleware.RequireAdmin)

	// Billing batch triggers. Cadence lives outside the app: cron or an
	// operator hits these endpoints.
	adminGroup.Post("/billing/generate", controllers.HandleAdminGenerateBills)
	adminGroup.Post("/billing/sweep", controllers.HandleAdminSweepOverdue)
	adminGroup.Get("/bills", controllers.HandleAdminListBills)

	// Student management
	adminGroup.Get("/students", controllers.HandleAdminListStudents)
	adminGroup.Post("/students/disable/:id", controllers.HandleAdminDisableStudent)

	// Mentor management
	adminGroup.Get("/mentors", controllers.HandleAdminListMentors)
	adminGroup.Post("/mentors", controllers.HandleAdminCreateMentor)
	adminGroup.Put("/mentors/:id", controllers.HandleAdminUpdateMentor)
	adminGroup.Delete("/mentors/:id", controllers.HandleAdminDeleteMentor)

	// Course management
	adminGroup.Get("/courses", controllers.HandleAdminListCourses)
	adminGroup.Post("/courses", controllers.HandleAdminCreateCourse)
	adminGroup.Put("/courses/:id", controllers.HandleAdminUpdateCourse)
	adminGroup.Delete("/courses/:id", controllers.HandleAdminDeleteCourse)
	adminGroup.Get("/courses/:id/schedules", controllers.HandleAdminListCourseSchedules)

	// Enrollment overview
	adminGroup.Get("/enrollments", controllers.HandleAdminListEnrollments)

	// Lesson slots
	adminGroup.Post("/schedules", controllers.HandleAdminCreateSchedule)
	adminGroup.Put("/schedules/:id", controllers.HandleAdminUpdateSchedule)
	adminGroup.Delete("/schedules/:id", controllers.HandleAdminDeleteSchedule)

	// Practice videos
	adminGroup.Post("/videos", controllers.HandleAdminCreateVideo)
	adminGroup.Delete("/videos/:id", controllers.HandleAdminDeleteVideo)
}
