package mapper

import (
	"stashed/internal/dto"
	"stashed/internal/models"
)

func ToUserGetDTO(user *models.User) *dto.UserGetDTO {
	return &dto.UserGetDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	}
}
