// Package models holds the domain entities shared by the services, the
// storage backends and the HTTP layer, together with the request shapes that
// create or change them.
package models

import "time"

// User is a registered account. PasswordHash never leaves the process.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Name         string    `json:"name" bson:"name"`
	Phone        *string   `json:"phone" bson:"phone,omitempty"`
	IsPremium    bool      `json:"is_premium" bson:"is_premium"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the Google ID token issued to the frontend.
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// AdminLoginRequest is the body of POST /auth/admin.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by every user login flow.
type TokenResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AdminTokenResponse is returned by the admin login.
type AdminTokenResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}
