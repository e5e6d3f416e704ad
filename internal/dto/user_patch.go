package dto

// UserPatch carries the mutable user fields for a partial update. Nil means
// "leave the column alone". Password is re-hashed only when present.
type UserPatch struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	DisplayName *string `json:"display_name"`
	IsAdmin     *bool   `json:"is_admin"`
}

func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Password == nil && p.DisplayName == nil && p.IsAdmin == nil
}
