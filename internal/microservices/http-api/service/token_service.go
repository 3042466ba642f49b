package service

import (
	"errors"
	"fmt"
	"time"

	"exlibris/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "exlibris"

// TokenService mints and verifies the HS256 bearer tokens that carry the
// caller identity. Users sign in elsewhere; this service only trusts tokens
// signed with the shared secret.
type TokenService interface {
	Issue(identity shared.Identity) (string, error)
	Validate(tokenString string) (shared.Identity, error)
}

type accessClaims struct {
	shared.AuthClaims
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *tokenService) Issue(identity shared.Identity) (string, error) {
	if identity.UserID == "" {
		return "", errors.New("issue token: empty user id")
	}
	if _, err := uuid.Parse(identity.UserID); err != nil {
		return "", fmt.Errorf("issue token: user id: %w", err)
	}
	role := identity.Role
	if role == "" {
		role = "user"
	}

	now := s.now()
	claims := accessClaims{
		AuthClaims: shared.AuthClaims{
			UserID:   identity.UserID,
			Username: identity.Username,
			Role:     role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Validate(tokenString string) (shared.Identity, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return shared.Identity{}, ErrExpiredToken
	}
	if err != nil || !token.Valid {
		return shared.Identity{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return shared.Identity{}, ErrInvalidToken
	}

	return shared.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
