package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um funcionário do hotel com acesso ao back-office
type User struct {
	ID           int        `json:"id"`
	Nombre       string     `json:"nombre"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserNombre string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
