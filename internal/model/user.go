package model

import "time"

// User represents a user in the database. Password always holds the bcrypt
// hash, never the plaintext.
type User struct {
	ID          string
	Email       string
	Password    string
	FullName    string
	DisplayName string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	DisplayName string `json:"displayName"`
}

// UserSession is the current-user projection handed to the presentation layer.
type UserSession struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone,omitempty"`
}
