package license

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Machine string `json:"machine"`
	jwt.RegisteredClaims
}

// CreateToken signs a machine-bound token with the given lifetime.
func CreateToken(secret, machine string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Machine: machine,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the HS256 signature and expiry and returns the claims.
func ParseToken(secret, token string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if claims, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
