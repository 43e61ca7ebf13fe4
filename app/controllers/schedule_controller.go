package controllers

import (
	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// HandleListMySchedule returns the logged-in student's weekly lesson slots.
func HandleListMySchedule(c *fiber.Ctx) error {
	schedules, err := repository.GetGlobalRepositories().Schedule.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		log.Errorf("list schedules: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load schedule")
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}

type scheduleRequest struct {
	CourseID  uint   `json:"course_id"`
	MentorID  uint   `json:"mentor_id"`
	UserID    uint   `json:"user_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
}

// HandleAdminCreateSchedule assigns a weekly lesson slot (admin only).
func HandleAdminCreateSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.CourseID == 0 || req.MentorID == 0 || req.UserID == 0 ||
		req.StartTime == "" || req.EndTime == "" ||
		req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return jsonError(c, fiber.StatusBadRequest, "missing or invalid schedule fields")
	}

	schedule := &models.Schedule{
		CourseID:  req.CourseID,
		MentorID:  req.MentorID,
		UserID:    req.UserID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
	}
	if err := repository.GetGlobalRepositories().Schedule.Create(schedule); err != nil {
		log.Errorf("create schedule: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create schedule")
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// HandleAdminUpdateSchedule updates a lesson slot (admin only).
func HandleAdminUpdateSchedule(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	scheduleRepo := repository.GetGlobalRepositories().Schedule
	schedule, err := scheduleRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "schedule not found")
	}

	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.MentorID != 0 {
		schedule.MentorID = req.MentorID
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}
	if req.Room != "" {
		schedule.Room = req.Room
	}
	if req.DayOfWeek >= 0 && req.DayOfWeek <= 6 {
		schedule.DayOfWeek = req.DayOfWeek
	}

	if err := scheduleRepo.Update(schedule); err != nil {
		log.Errorf("update schedule %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not update schedule")
	}
	return c.JSON(schedule)
}

// HandleAdminDeleteSchedule removes a lesson slot (admin only).
func HandleAdminDeleteSchedule(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}
	if err := repository.GetGlobalRepositories().Schedule.Delete(id); err != nil {
		log.Errorf("delete schedule %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete schedule")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminListCourseSchedules returns all slots for a course (admin only).
func HandleAdminListCourseSchedules(c *fiber.Ctx) error {
	courseID, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	schedules, err := repository.GetGlobalRepositories().Schedule.GetByCourseID(courseID)
	if err != nil {
		log.Errorf("list schedules for course %d: %v", courseID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load schedules")
	}
	return c.JSON(fiber.Map{"schedules": schedules})
}
