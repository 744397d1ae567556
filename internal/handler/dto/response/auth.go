package response

import (
	"dealvista/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func FromAuthOutput(out *commands.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken: out.Token,
		UserID:      out.UserID,
		FullName:    out.FullName,
		Email:       out.Email,
		Role:        out.Role,
	}
}
