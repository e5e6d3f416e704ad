package handlers

import (
	"net/http"
	"strings"

	"stashed/internal/models"
	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "currentUser"

type AuthMiddleware struct {
	auth services.AuthService
}

func NewAuthMiddleware(auth services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireUser resolves the bearer token and stores the user on the request
// context. Requests without a valid session never reach the handlers.
func (m *AuthMiddleware) RequireUser(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{
			"error":   "InvalidCredentials",
			"message": "you must be logged in to perform this action",
		})
	}
	user, err := m.auth.Resolve(strings.TrimPrefix(header, prefix))
	if err != nil {
		return respondError(c, err)
	}
	c.Locals(userLocalKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
