package processor

import (
	"ambassador-server/internal/observability"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	adminTokenIssuer = "ambassador-server"
	adminTokenTTL    = 24 * time.Hour
)

var (
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
	ErrParseJWTToken         = errors.New("failed to parse jwt token")
	ErrExpiredToken          = errors.New("token expired")
	ErrMissingOrganization   = errors.New("token carries no organization")
	ErrOrganizationForbidden = errors.New("token is not valid for this organization")
	ErrFailedSignToken       = errors.New("failed to sign token")
)

type AuthProcessor struct {
	jwtSecret string
	now       func() time.Time
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		now:       time.Now,
		logger:    logger,
	}
}

// AdminClaims are carried by platform-issued admin tokens
type AdminClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud,omitempty"`
	OrganizationID string           `json:"organization_id"`
}
