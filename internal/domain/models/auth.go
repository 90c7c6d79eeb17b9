package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the JWT claims the server cares about. The identity
// provider issues tokens; this service only verifies them against the
// provider's JWKS and reads the subject as the acting user ID.
type AuthClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
