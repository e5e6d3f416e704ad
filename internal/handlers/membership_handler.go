package handlers

import (
	"net/http"
	"strconv"

	"stashed/internal/services"

	"github.com/gofiber/fiber/v2"
)

type MembershipHandler struct {
	service services.MembershipService
}

func NewMembershipHandler(service services.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

func (h *MembershipHandler) AssignItem(c *fiber.Ctx) error {
	user := currentUser(c)

	var req struct {
		ItemID uint `json:"item_id"`
		BoxID  uint `json:"box_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.ItemID == 0 || req.BoxID == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "item_id and box_id are required"})
	}

	membership, err := h.service.Assign(user.ID, req.ItemID, req.BoxID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(membership)
}

func (h *MembershipHandler) ReassignItem(c *fiber.Ctx) error {
	user := currentUser(c)
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		BoxID uint `json:"box_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.BoxID == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "box_id is required"})
	}

	membership, err := h.service.Reassign(user.ID, uint(itemID), req.BoxID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(membership)
}

func (h *MembershipHandler) UnassignItem(c *fiber.Ctx) error {
	user := currentUser(c)
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	membership, err := h.service.Unassign(user.ID, uint(itemID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(membership)
}

func (h *MembershipHandler) GetMembershipByItem(c *fiber.Ctx) error {
	user := currentUser(c)
	itemID, err := strconv.ParseUint(c.Params("itemId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	membership, err := h.service.GetByItem(user.ID, uint(itemID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(membership)
}

func (h *MembershipHandler) ListMembersByBox(c *fiber.Ctx) error {
	user := currentUser(c)
	boxID, err := strconv.ParseUint(c.Params("boxId"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	memberships, err := h.service.ListByBox(user.ID, uint(boxID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(memberships)
}
