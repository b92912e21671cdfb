package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
