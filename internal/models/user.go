package models

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string `gorm:"type:varchar(255);not null" json:"display_name"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}
