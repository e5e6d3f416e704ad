package models

import (
	"time"
)

// BoxItem links an item to the box it currently sits in. ItemID is the
// primary key, so an item can never hold more than one membership row.
type BoxItem struct {
	ItemID    uint      `gorm:"primaryKey" json:"item_id"`
	BoxID     uint      `gorm:"index;not null" json:"box_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
