// Package auth provides concrete implementations of the identity services.
package auth

import (
	"context"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"
	"showmyshop/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "showmyshop"

// Claims carries the profile fields the identity provider puts in its tokens.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// JWTService verifies and issues HS256 tokens for the local identity provider.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.AuthConfig) (*JWTService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret must be provided for the jwt identity provider")
	}

	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for caller.
func (s *JWTService) Issue(caller *entity.Caller) (string, error) {
	if caller == nil || caller.Email == "" {
		return "", errors.New("caller email is required")
	}

	subject := caller.UID
	if subject == "" {
		subject = caller.Email
	}

	now := s.now()
	claims := Claims{
		Email:   caller.Email,
		Name:    caller.DisplayName,
		Picture: caller.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of tokenString.
func (s *JWTService) Verify(_ context.Context, tokenString string) (*entity.Caller, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.Email == "" {
		return nil, errors.New("token has no email claim")
	}

	return &entity.Caller{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}, nil
}
