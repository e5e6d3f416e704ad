package handlers

import (
	"net/http"

	"stashed/internal/dto"
	"stashed/internal/mapper"
	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service services.UserService
	auth    services.AuthService
}

func NewUserHandler(service services.UserService, auth services.AuthService) *UserHandler {
	return &UserHandler{service: service, auth: auth}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	user, err := h.service.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{
		"token": token,
		"user":  mapper.ToUserGetDTO(user),
	})
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) {
		if err := h.auth.Logout(header[len(prefix):]); err != nil {
			return respondError(c, err)
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(mapper.ToUserGetDTO(user))
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user := currentUser(c)

	var patch dto.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	updated, err := h.service.Update(user.ID, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// DeleteMe removes the user and, through the cascade, every location, box,
// item and membership the user owns.
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	user := currentUser(c)

	report, err := h.service.Destroy(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
