package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

type Role string

const (
	RoleDemandeur  Role = "DEMANDEUR"
	RoleTechnicien Role = "TECHNICIEN"
	RoleAdmin      Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDemandeur, RoleTechnicien, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

type User struct {
	ID       int          `json:"id"`
	Username string       `json:"username"`
	Password string       `json:"-"`
	Role     Role         `json:"role"`
	Service  *ServiceType `json:"service,omitempty"`
}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

type Session struct {
	UserID       int       `json:"user_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Username     string       `json:"username"`
	Role         Role         `json:"role"`
	Service      *ServiceType `json:"service,omitempty"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Service  string `json:"service,omitempty"`
}
