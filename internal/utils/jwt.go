package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// AdminClaims are the claims carried by an admin session token. There is a
// single shared admin identity, so the only custom claim is the admin flag.
type AdminClaims struct {
	Admin                bool `json:"admin"` // Marks the token as an admin session
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateAdminJWT creates a short-lived admin session token
func GenerateAdminJWT(secret string) (string, error) {
	// Set token claims
	claims := AdminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)), // Admin sessions are short
			IssuedAt:  jwt.NewNumericDate(time.Now()),                    // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseAdminJWT parses and validates an admin token string
func ParseAdminJWT(tokenStr, secret string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid && claims.Admin {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
