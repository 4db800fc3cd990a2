package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
)

// Claims carry the full session snapshot so a request can recover the actor
// without a store read. The claims are a copy taken at login, never a live
// user reference.
type Claims struct {
	UserID     string `json:"uid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"dept"`
	jwt.RegisteredClaims
}

func SignSession(secret string, s models.Session, ttl time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: s.UserID, Name: s.Name, Email: s.Email,
		Role: string(s.Role), Department: s.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}).SignedString([]byte(secret))
}

func ParseSession(secret, token string) (*models.Session, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return &models.Session{
		UserID:     c.UserID,
		Name:       c.Name,
		Email:      c.Email,
		Role:       models.Role(c.Role),
		Department: c.Department,
	}, nil
}
