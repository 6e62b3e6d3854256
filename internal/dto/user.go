package dto

import (
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to provision a staff account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=manager staff"`
}

// UserResponse defines the data returned for a staff account.
type UserResponse struct {
	UserID      string     `json:"userID"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, user := range users {
		res[i] = ToUserResponse(&user)
	}
	return res
}
