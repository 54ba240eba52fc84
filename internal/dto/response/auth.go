package response

import (
	"time"

	"course-portal/internal/data/entity"
)

const TokenTypeBearer = "bearer"

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// UserResponse never carries the password hash
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	BirthDate string          `json:"birth_date"`
	Country   string          `json:"country"`
	City      string          `json:"city"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		Phone:     user.Phone,
		BirthDate: user.BirthDate,
		Country:   user.Country,
		City:      user.City,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, UserToResponse(user))
	}
	return resp
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        UserToResponse(user),
	}
}
