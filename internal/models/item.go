package models

type Item struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(255);default:MISC" json:"category"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
	ImageURL    string `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	LocationID  *uint  `gorm:"index" json:"location_id"`
}
