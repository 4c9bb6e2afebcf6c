package processor

import (
	"ambassador-server/internal/observability"
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAdminToken signs a token that authorizes admin calls for one organization
func (p *AuthProcessor) GenerateAdminToken(ctx context.Context, subject string, organizationID uuid.UUID) (string, error) {
	now := p.now()
	claims := AdminClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         adminTokenIssuer,
		Subject:        subject,
		OrganizationID: organizationID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (AdminClaims, error) {
	var claims AdminClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithTimeFunc(p.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return AdminClaims{}, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return AdminClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return AdminClaims{}, ErrInvalidJWTToken
	}

	return claims, nil
}

// AuthorizeOrganization validates the token and checks it was issued for organizationID
func (p *AuthProcessor) AuthorizeOrganization(ctx context.Context, token string, organizationID uuid.UUID) (AdminClaims, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return AdminClaims{}, err
	}

	if claims.OrganizationID == "" {
		return AdminClaims{}, ErrMissingOrganization
	}
	claimed, err := uuid.Parse(claims.OrganizationID)
	if err != nil {
		return AdminClaims{}, ErrMissingOrganization
	}
	if claimed != organizationID {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "token_organization_id", Value: claims.OrganizationID},
			observability.Field{Key: "organization_id", Value: organizationID.String()},
		)
		p.logger.Warn(ctx, "admin token used for another organization")
		return AdminClaims{}, ErrOrganizationForbidden
	}

	return claims, nil
}

func (b *AdminClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *AdminClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *AdminClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *AdminClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *AdminClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *AdminClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}
