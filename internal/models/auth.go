package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole identifies which login flow and screens a user gets.
type UserRole string

const (
	RoleAdmin   UserRole = "administrativo"
	RoleTeacher UserRole = "docente"
	RoleStudent UserRole = "estudiante"
)

// Valid reports whether the role is one of the three selectable roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// DemoCredential is a fixed username/password pair that stays valid for its
// role regardless of any dynamically created accounts.
type DemoCredential struct {
	Usuario    string
	Contrasena string
}

// DemoCredentials holds the demonstration pair per role. These values are
// load-bearing for existing deployments and must not change.
var DemoCredentials = map[UserRole]DemoCredential{
	RoleAdmin:   {Usuario: "admin", Contrasena: "admin123"},
	RoleTeacher: {Usuario: "docente", Contrasena: "docente123"},
	RoleStudent: {Usuario: "estudiante", Contrasena: "estudiante123"},
}

// LoginRequest is the credential triple the login screen submits.
type LoginRequest struct {
	Role       UserRole `json:"rol" validate:"required"`
	Usuario    string   `json:"usuario" validate:"required"`
	Contrasena string   `json:"contraseña" validate:"required"`
}

// LoginResponse carries the issued access token on success.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Usuario     string    `json:"usuario"`
	Role        UserRole  `json:"rol"`
}

// JWTClaims are the custom claims embedded in access tokens.
type JWTClaims struct {
	Usuario string   `json:"usuario"`
	Role    UserRole `json:"rol"`
	jwt.RegisteredClaims
}
