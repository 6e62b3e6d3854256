package dto

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token plus the account it belongs to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
