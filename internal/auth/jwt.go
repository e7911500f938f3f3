package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/opostest/backend/config"
)

const TokenTTL = 72 * time.Hour

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
)

type Claims struct {
	UserID  uint `json:"user_id"`
	IsStaff bool `json:"is_staff"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager fails without a secret; an empty HMAC key would accept forged tokens.
func NewTokenManager(cfg *config.Config) (*TokenManager, error) {
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, ErrMissingSecret
	}
	return &TokenManager{secret: []byte(cfg.Auth.JWTSecret), ttl: TokenTTL, now: time.Now}, nil
}

// Issue signs an HS256 token for the user.
func (m *TokenManager) Issue(userID uint, isStaff bool) (string, time.Time, error) {
	expiresAt := m.now().Add(m.ttl)
	claims := Claims{
		UserID:  userID,
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
