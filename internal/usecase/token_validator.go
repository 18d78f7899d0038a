package usecase

import (
	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller's SessionContext.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.SessionContext, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	format     identity.Format
}

func NewTokenValidator(jwtService *jwt.Service, format identity.Format) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		format:     format,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.SessionContext, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.SessionContext{}, err
	}

	id, err := t.format.Parse(claims.Identity)
	if err != nil {
		return auth.SessionContext{}, err
	}
	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return auth.SessionContext{}, err
	}

	return auth.NewSessionContext(id, role), nil
}
