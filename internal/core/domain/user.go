package domain

import "time"

// UserRole determines what a staff account may administer.
type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// User represents a staff account of the admin dashboard.
type User struct {
	UserID       string     `json:"userID"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
