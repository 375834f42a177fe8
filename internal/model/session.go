package model

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is the current login state. IsAuthenticated is true if and only if
// both User and Token were set together by a completed login; IsLoading is
// true only while a login attempt is in flight.
type Session struct {
	User            *User  `json:"user,omitempty"`
	Token           string `json:"token,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
}

// Empty reports whether the session holds no identity at all.
func (s Session) Empty() bool {
	return s.User == nil && s.Token == "" && !s.IsAuthenticated
}

// LoginResponse is returned from a successful login.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
