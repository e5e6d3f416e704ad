package dto

import (
	"stashed/internal/models"
)

// CascadeReport lists everything removed while tearing down a user's data,
// in deletion order.
type CascadeReport struct {
	BoxItems  []models.BoxItem         `json:"box_items"`
	Boxes     []models.Box             `json:"boxes"`
	Items     []models.Item            `json:"items"`
	Locations []models.StorageLocation `json:"locations"`
}
