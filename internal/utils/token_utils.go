package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the JWT claims carried by an access token. Role is included so
// the middleware can enforce manager-only routes without a user lookup.
type AuthClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new signed access token for the given user.
func GenerateJWT(userID, role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	claims := AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims. It returns the claims if the token is valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
