package handlers

import (
	"net/http"
	"strconv"

	"stashed/internal/dto"
	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service services.LocationService
}

func NewLocationHandler(service services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	user := currentUser(c)

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Note     string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	location, err := h.service.Create(user.ID, req.Name, req.Location, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(location)
}

func (h *LocationHandler) GetLocationByID(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	location, err := h.service.GetByID(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	user := currentUser(c)

	locations, err := h.service.ListByUser(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locations)
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	var patch dto.LocationPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	location, err := h.service.Update(user.ID, uint(id), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

func (h *LocationHandler) GetLocationContents(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	contents, err := h.service.GetContents(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contents)
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	location, err := h.service.Destroy(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}
