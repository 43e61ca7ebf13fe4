package controllers

import (
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/billing"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/mail"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Registration bills fall due one week after enrolling.
const registrationDueDays = 7

type enrollRequest struct {
	CourseID uint `json:"course_id"`
}

// HandleEnroll enrolls the logged-in student into a course. The enrollment
// starts as pending_payment together with its registration bill; it becomes
// active only once that bill settles.
func HandleEnroll(c *fiber.Ctx) error {
	var req enrollRequest
	if err := c.BodyParser(&req); err != nil || req.CourseID == 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID := usercontext.GetUserID(c)
	repos := repository.GetGlobalRepositories()

	course, err := repos.Course.GetByID(req.CourseID)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "course not found")
	}
	if !course.IsOpen() {
		return jsonError(c, fiber.StatusConflict, "course is closed for enrollment")
	}

	open, err := repos.Enrollment.HasOpenEnrollment(userID, course.ID)
	if err != nil {
		log.Errorf("check enrollment for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not enroll")
	}
	if open {
		return jsonError(c, fiber.StatusConflict, "already enrolled in this course")
	}

	now := time.Now()
	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Status:     models.EnrollmentStatusPendingPayment,
		EnrolledAt: now,
	}
	if err := repos.Enrollment.Create(enrollment); err != nil {
		log.Errorf("create enrollment: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not enroll")
	}

	bill := models.NewRegistrationBill(
		userID, course.ID, course.RegistrationFee,
		billing.PeriodLabel(now), now.AddDate(0, 0, registrationDueDays),
	)
	if err := repos.Bill.Create(bill); err != nil {
		log.Errorf("create registration bill for enrollment %d: %v", enrollment.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create registration bill")
	}

	// Mail failures are logged, not surfaced; the bill is visible in the app.
	if user, err := repos.User.GetByID(userID); err == nil {
		if err := mail.SendBillIssuedMail(user, bill); err != nil {
			log.Warnf("send bill issued mail to %s: %v", user.Email, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"enrollment": enrollment,
		"bill":       bill,
	})
}

// HandleListMyEnrollments returns the logged-in student's enrollments.
func HandleListMyEnrollments(c *fiber.Ctx) error {
	enrollments, err := repository.GetGlobalRepositories().Enrollment.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("list enrollments: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load enrollments")
	}
	return c.JSON(fiber.Map{"enrollments": enrollments})
}

// HandleAdminListEnrollments returns enrollments with pagination (admin only).
func HandleAdminListEnrollments(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)

	enrollments, err := repository.GetGlobalRepositories().Enrollment.List(offset, limit)
	if err != nil {
		log.Errorf("list enrollments: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load enrollments")
	}
	return c.JSON(fiber.Map{"enrollments": enrollments})
}
