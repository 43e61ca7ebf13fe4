package controllers

import (
	"encoding/json"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// The public catalog is the hottest read; responses are cached briefly and
// invalidated on any admin course change.
const openCoursesCacheKey = "courses:open"
const openCoursesCacheTTL = time.Minute

func invalidateOpenCoursesCache() {
	if err := cache.Delete(openCoursesCacheKey); err != nil {
		log.Warnf("invalidate course cache: %v", err)
	}
}

// HandleListCourses returns all courses that are open for enrollment.
func HandleListCourses(c *fiber.Ctx) error {
	if cached, err := cache.Get(openCoursesCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	courses, err := repository.GetGlobalRepositories().Course.GetOpen()
	if err != nil {
		log.Errorf("list open courses: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load courses")
	}

	payload, err := json.Marshal(fiber.Map{"courses": courses})
	if err != nil {
		return c.JSON(fiber.Map{"courses": courses})
	}
	if err := cache.Set(openCoursesCacheKey, payload, openCoursesCacheTTL); err != nil {
		log.Warnf("cache open courses: %v", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// HandleGetCourse returns a single course with its mentor.
func HandleGetCourse(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	course, err := repository.GetGlobalRepositories().Course.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "course not found")
	}
	return c.JSON(course)
}

type courseRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Instrument      string `json:"instrument"`
	MentorID        uint   `json:"mentor_id"`
	MonthlyFee      int64  `json:"monthly_fee"`
	RegistrationFee int64  `json:"registration_fee"`
	Status          string `json:"status"`
}

// HandleAdminCreateCourse creates a new course (admin only).
func HandleAdminCreateCourse(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status == "" {
		req.Status = models.CourseStatusOpen
	}

	course := &models.Course{
		Name:            req.Name,
		Description:     req.Description,
		Instrument:      req.Instrument,
		MentorID:        req.MentorID,
		MonthlyFee:      req.MonthlyFee,
		RegistrationFee: req.RegistrationFee,
		Status:          req.Status,
	}
	if err := course.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := repository.GetGlobalRepositories().Mentor.GetByID(req.MentorID); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "mentor not found")
	}

	if err := repository.GetGlobalRepositories().Course.Create(course); err != nil {
		log.Errorf("create course: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create course")
	}
	invalidateOpenCoursesCache()
	return c.Status(fiber.StatusCreated).JSON(course)
}

// HandleAdminUpdateCourse updates an existing course (admin only).
func HandleAdminUpdateCourse(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	courseRepo := repository.GetGlobalRepositories().Course
	course, err := courseRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "course not found")
	}

	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Instrument != "" {
		course.Instrument = req.Instrument
	}
	if req.MentorID != 0 {
		course.MentorID = req.MentorID
	}
	if req.MonthlyFee != 0 {
		course.MonthlyFee = req.MonthlyFee
	}
	if req.RegistrationFee != 0 {
		course.RegistrationFee = req.RegistrationFee
	}
	if req.Status != "" {
		course.Status = req.Status
	}

	if err := course.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := courseRepo.Update(course); err != nil {
		log.Errorf("update course %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not update course")
	}
	invalidateOpenCoursesCache()
	return c.JSON(course)
}

// HandleAdminListCourses returns every course including closed ones.
func HandleAdminListCourses(c *fiber.Ctx) error {
	courses, err := repository.GetGlobalRepositories().Course.GetAll()
	if err != nil {
		log.Errorf("list courses: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load courses")
	}
	return c.JSON(fiber.Map{"courses": courses})
}

// HandleAdminDeleteCourse removes a course (admin only).
func HandleAdminDeleteCourse(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	if err := repository.GetGlobalRepositories().Course.Delete(id); err != nil {
		log.Errorf("delete course %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete course")
	}
	invalidateOpenCoursesCache()
	return c.SendStatus(fiber.StatusNoContent)
}
