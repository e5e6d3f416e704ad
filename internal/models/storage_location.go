package models

type StorageLocation struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Location string `gorm:"type:varchar(255);not null;default:Home" json:"location"`
	Note     string `gorm:"type:text" json:"note,omitempty"`
}
