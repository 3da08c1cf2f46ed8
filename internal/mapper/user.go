package mapper

import (
	"yoga-studio/internal/api"
	"yoga-studio/internal/model"
)

func UserToResponse(u *model.User) *api.UserResponse {
	return &api.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Admin:     u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
