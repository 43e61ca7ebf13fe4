package controllers

import (
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/mail"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new inactive student account and mails the
// activation link.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userRepo := repository.GetGlobalRepositories().User

	if existing, _ := userRepo.GetByEmail(req.Email); existing != nil {
		return jsonError(c, fiber.StatusConflict, "email is already registered")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	user.Phone = req.Phone
	user.Address = req.Address

	if err := user.GenerateActivationToken(); err != nil {
		log.Errorf("generate activation token: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create account")
	}

	if err := userRepo.Create(user); err != nil {
		log.Errorf("create user: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create account")
	}

	// Mail failures are logged, not surfaced; the admin can resend.
	if err := mail.SendActivationMail(user); err != nil {
		log.Errorf("send activation mail to %s: %v", user.Email, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     user.ID,
		"email":  user.Email,
		"status": user.Status,
	})
}

// HandleActivate activates an account via the mailed token.
func HandleActivate(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing activation token")
	}

	userRepo := repository.GetGlobalRepositories().User
	user, err := userRepo.GetByActivationToken(token)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "invalid activation token")
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := userRepo.Update(user); err != nil {
		log.Errorf("activate user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not activate account")
	}

	return c.JSON(fiber.Map{"status": user.Status})
}

// HandleLogin verifies credentials and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userRepo := repository.GetGlobalRepositories().User
	user, err := userRepo.GetByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "account is not active")
	}

	if err := storeUserSession(c, user.ID, user.Name, user.Role == models.ROLE_ADMIN); err != nil {
		log.Errorf("store session for user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create session")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := userRepo.Update(user); err != nil {
		log.Warnf("update last login for user %d: %v", user.ID, err)
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// HandleLogout destroys the current session.
func HandleLogout(c *fiber.Ctx) error {
	if err := destroyUserSession(c); err != nil {
		log.Warnf("destroy session: %v", err)
	}
	return c.JSON(fiber.Map{"status": "logged_out"})
}

// HandleMe returns the current session's user.
func HandleMe(c *fiber.Ctx) error {
	userRepo := repository.GetGlobalRepositories().User
	user, err := userRepo.GetByID(usercontext.GetUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "user not found")
	}
	return c.JSON(user)
}
