package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// ErrInvalidToken is the single verification outcome surfaced to callers.
// Signature mismatch, malformed input and expiry are logged but not
// distinguished in the result.
var ErrInvalidToken = errors.New("invalid or expired token")

type jwtService struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService builds a token service over a shared HMAC-SHA256 secret.
// Any process holding the same secret can verify tokens issued here.
func NewService(secret string, expiry time.Duration) Service {
	return &jwtService{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

func (s *jwtService) Generate(username string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Roles: strings.Join(roles, ","),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *jwtService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		logrus.WithError(err).Debug("token verification failed")
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
