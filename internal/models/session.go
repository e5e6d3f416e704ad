package models

import (
	"time"
)

type Session struct {
	Token     string    `gorm:"type:char(36);primaryKey" json:"token"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
