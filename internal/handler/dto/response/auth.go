package response

import (
	"time"

	"pupperazi-api/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:        view.ID.String(),
		Email:     view.Email,
		Role:      view.Role,
		LastLogin: view.LastLogin,
	}
}
