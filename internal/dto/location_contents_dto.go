package dto

import (
	"stashed/internal/models"
)

// LocationContentsDTO lists what still physically sits at a storage
// location. Both slices are always non-nil.
type LocationContentsDTO struct {
	Boxes []models.Box  `json:"boxes"`
	Items []models.Item `json:"items"`
}
