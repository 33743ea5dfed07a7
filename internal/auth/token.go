/* JWT issue and verification for login tokens */

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type TokenManager struct {
	key []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{key: []byte(secret)}
}

// Claims carries the authenticated user's id number.
type Claims struct {
	IDNumber string `json:"id_number"`
	jwt.RegisteredClaims
}

func (m *TokenManager) GenerateToken(idNumber string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		IDNumber: idNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "health-check-api",
			Subject:   "user_auth_token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
