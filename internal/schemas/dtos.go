package schemas

import "time"

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// UserDTO is a struct that represents a user response
// ID is the numeric identifier of the user
// Email is the email of the user
// Username is the username of the user
// IsActive tells whether the user may authenticate
// CreatedAt is the registration timestamp
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserDTO converts a user record into its public representation.
func NewUserDTO(user *User) *UserDTO {
	return &UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// TokenPairDTO is a struct that represents a token response
// AccessToken is the main JWT token used for auth
// RefreshToken is the refresh token used to get a new token
// TokenType is always "bearer"
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// MessageDTO is a struct that represents a plain message response
type MessageDTO struct {
	Message string `json:"message"`
}

// HealthDTO is a struct that represents a health response
// Services is only filled by the gateway
type HealthDTO struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}
