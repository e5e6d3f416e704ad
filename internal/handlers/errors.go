package handlers

import (
	"net/http"

	"stashed/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound, apperrors.KindUserNotFound, apperrors.KindNotInBox:
		return http.StatusNotFound
	case apperrors.KindOwnershipMismatch:
		return http.StatusForbidden
	case apperrors.KindDuplicateMembership, apperrors.KindDuplicateEmail, apperrors.KindLocationNotEmpty:
		return http.StatusConflict
	case apperrors.KindWeakPassword, apperrors.KindInvalidEmailFormat, apperrors.KindMissingRequiredField:
		return http.StatusBadRequest
	case apperrors.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	kind := apperrors.KindOf(err)
	return c.Status(statusForKind(kind)).JSON(map[string]interface{}{
		"error":   string(kind),
		"message": err.Error(),
	})
}
