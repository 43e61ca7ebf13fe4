package controllers

import (
	"strconv"

	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/session"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

const (
	AUTH_KEY      string = usercontext.AuthKey
	USER_ID       string = usercontext.KeyUserID
	USER_NAME     string = usercontext.KeyUsername
	USER_IS_ADMIN string = usercontext.KeyIsAdmin
)

// jsonError writes a uniform JSON error body
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   statusLabel(status),
		"message": message,
	})
}

func statusLabel(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusBadGateway:
		return "bad_gateway"
	default:
		return "internal_error"
	}
}

// paramUint parses a numeric route parameter
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// queryInt reads an integer query parameter with a default
func queryInt(c *fiber.Ctx, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// storeUserSession persists the logged-in user into the session store
func storeUserSession(c *fiber.Ctx, userID uint, username string, isAdmin bool) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, userID)
	sess.Set(USER_NAME, username)
	sess.Set(USER_IS_ADMIN, isAdmin)
	return sess.Save()
}

// destroyUserSession removes the session for the current user
func destroyUserSession(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
