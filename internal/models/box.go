package models

type Box struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Label       string `gorm:"type:varchar(255);not null" json:"label"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(255);default:MISC" json:"category"`
	LocationID  *uint  `gorm:"index" json:"location_id"`
}
