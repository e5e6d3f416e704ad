package handlers

import (
	"net/http"
	"strconv"

	"stashed/internal/dto"
	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service services.BoxService
}

func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	user := currentUser(c)

	var req struct {
		Label       string `json:"label"`
		Description string `json:"description"`
		Category    string `json:"category"`
		LocationID  *uint  `json:"location_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.Create(user.ID, req.Label, req.Description, req.Category, req.LocationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetByID(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	user := currentUser(c)

	boxes, err := h.service.ListByUser(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) ListBoxesByLocation(c *fiber.Ctx) error {
	user := currentUser(c)
	locationID, err := strconv.ParseUint(c.Params("locationId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	boxes, err := h.service.ListByLocation(user.ID, uint(locationID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	var patch dto.BoxPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.Update(user.ID, uint(id), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.Destroy(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(box)
}
