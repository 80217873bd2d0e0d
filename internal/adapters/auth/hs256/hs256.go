package hs256

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"faunagram/internal/ports/auth"
)

var (
	ErrEmptySecret  = errors.New("signing secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService implementa auth.TokenIssuer y auth.AuthVerifier con HS256.
// El secreto llega inyectado por quien lo construye (config), nunca se
// lee de env acá ni se expone en errores o logs.
// El token lleva user_id como único claim, sin expiración.
type TokenService struct {
	secret []byte
}

func New(secret string) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

func (s *TokenService) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("user id required")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
	})
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(_ context.Context, tokenStr string) (auth.Claims, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		// Solo HMAC; cualquier otro método se rechaza.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{UserID: userID}, nil
}
