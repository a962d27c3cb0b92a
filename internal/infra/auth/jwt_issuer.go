// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"authstarter/config"
	"authstarter/internal/domain/entity"
	"authstarter/internal/domain/service"
)

// defaultAccessTTL applies when no token lifetime is configured.
const defaultAccessTTL = time.Minute * 15

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret    string        // Secret key for signing access tokens.
	issuer    string        // Value of the "iss" claim on issued tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer.
// It takes configuration values to create a new token issuer instance.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTTL
	if cfg.Token != nil && cfg.Token.AccessTTL > 0 {
		accessTTL = cfg.Token.AccessTTL
	}

	return &jwtIssuer{
		secret:    cfg.SecretKey.Access,
		issuer:    cfg.Env.ServiceName,
		accessTTL: accessTTL,
	}, nil
}

// Issue creates a signed access token for the given principal.
func (s *jwtIssuer) Issue(principal *entity.Principal) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: principal.Username,
		Roles:    principal.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principal.AccountID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// Parse validates a token string and returns its claims.
func (s *jwtIssuer) Parse(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return claims, nil
}
