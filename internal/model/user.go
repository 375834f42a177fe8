package model

import "time"

// User status constants
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a staff member who can sign into the system
type User struct {
	Base
	Email        string     `json:"email" db:"email"`
	Password     string     `json:"password,omitempty" db:"-"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Role         Role       `json:"role" db:"role"`
	Department   string     `json:"department" db:"department"`
	Phone        string     `json:"phone" db:"phone"`
	Status       string     `json:"status" db:"status"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CreateUserRequest represents staff creation parameters
type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Role       string `json:"role" binding:"required,role"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone"`
}

// UpdateUserRequest represents staff update parameters
type UpdateUserRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Role       *string `json:"role" binding:"omitempty,role"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UserFilters represents staff search parameters
type UserFilters struct {
	Role       Role   `json:"role" form:"role"`
	Department string `json:"department" form:"department"`
	Status     string `json:"status" form:"status"`
	SearchTerm string `json:"search_term" form:"search_term"`
}
