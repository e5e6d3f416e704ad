package dto

// UserGetDTO is the outward user shape. The password hash never leaves the
// service layer.
type UserGetDTO struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}
