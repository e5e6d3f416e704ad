package handlers

import (
	"net/http"
	"strconv"

	"stashed/internal/dto"
	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	user := currentUser(c)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Quantity    int    `json:"quantity"`
		ImageURL    string `json:"image_url"`
		LocationID  *uint  `json:"location_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.Create(user.ID, req.Name, req.Description, req.Category,
		req.Quantity, req.ImageURL, req.LocationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.GetByID(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	user := currentUser(c)

	items, err := h.service.ListByUser(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) ListItemsByLocation(c *fiber.Ctx) error {
	user := currentUser(c)
	locationID, err := strconv.ParseUint(c.Params("locationId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid location ID"})
	}

	items, err := h.service.ListByLocation(user.ID, uint(locationID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var patch dto.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.Update(user.ID, uint(id), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.Destroy(user.ID, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
