package controllers

import (
	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type mentorRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Instrument string `json:"instrument"`
	Bio        string `json:"bio"`
}

// HandleAdminListMentors returns all mentors.
func HandleAdminListMentors(c *fiber.Ctx) error {
	mentors, err := repository.GetGlobalRepositories().Mentor.GetAll()
	if err != nil {
		log.Errorf("list mentors: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load mentors")
	}
	return c.JSON(fiber.Map{"mentors": mentors})
}

// HandleAdminCreateMentor registers a new mentor.
func HandleAdminCreateMentor(c *fiber.Ctx) error {
	var req mentorRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	mentor := &models.Mentor{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Instrument: req.Instrument,
		Bio:        req.Bio,
	}
	if err := repository.GetGlobalRepositories().Mentor.Create(mentor); err != nil {
		log.Errorf("create mentor: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create mentor")
	}
	return c.Status(fiber.StatusCreated).JSON(mentor)
}

// HandleAdminUpdateMentor updates an existing mentor.
func HandleAdminUpdateMentor(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid mentor id")
	}

	mentorRepo := repository.GetGlobalRepositories().Mentor
	mentor, err := mentorRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "mentor not found")
	}

	var req mentorRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name != "" {
		mentor.Name = req.Name
	}
	if req.Email != "" {
		mentor.Email = req.Email
	}
	if req.Phone != "" {
		mentor.Phone = req.Phone
	}
	if req.Instrument != "" {
		mentor.Instrument = req.Instrument
	}
	if req.Bio != "" {
		mentor.Bio = req.Bio
	}

	if err := mentorRepo.Update(mentor); err != nil {
		log.Errorf("update mentor %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not update mentor")
	}
	return c.JSON(mentor)
}

// HandleAdminDeleteMentor removes a mentor.
func HandleAdminDeleteMentor(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid mentor id")
	}
	if err := repository.GetGlobalRepositories().Mentor.Delete(id); err != nil {
		log.Errorf("delete mentor %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete mentor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminListStudents returns users with pagination, or a name/email
// search when q is given.
func HandleAdminListStudents(c *fiber.Ctx) error {
	userRepo := repository.GetGlobalRepositories().User

	if q := c.Query("q"); q != "" {
		users, err := userRepo.Search(q)
		if err != nil {
			log.Errorf("search users: %v", err)
			return jsonError(c, fiber.StatusInternalServerError, "could not search students")
		}
		return c.JSON(fiber.Map{"students": users})
	}

	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)

	users, err := userRepo.List(offset, limit)
	if err != nil {
		log.Errorf("list users: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load students")
	}
	total, err := userRepo.Count()
	if err != nil {
		log.Errorf("count users: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load students")
	}
	return c.JSON(fiber.Map{"students": users, "total": total})
}

// HandleAdminDisableStudent disables a student account.
func HandleAdminDisableStudent(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	userRepo := repository.GetGlobalRepositories().User
	user, err := userRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}

	user.Status = models.STATUS_DISABLED
	if err := userRepo.Update(user); err != nil {
		log.Errorf("disable user %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not disable student")
	}
	return c.JSON(fiber.Map{"status": user.Status})
}
