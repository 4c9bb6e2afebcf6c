package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=handler

import (
	"ambassador-server/internal/apierrors"
	"ambassador-server/internal/auth/processor"
	"ambassador-server/internal/observability"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationAuthorizer checks an admin token against an organization
type OrganizationAuthorizer interface {
	AuthorizeOrganization(ctx context.Context, token string, organizationID uuid.UUID) (processor.AdminClaims, error)
}

type Handler struct {
	authorizer OrganizationAuthorizer
	logger     *observability.Logger
}

func New(authorizer OrganizationAuthorizer, logger *observability.Logger) Handler {
	return Handler{authorizer: authorizer, logger: logger}
}

// HandleJWTMiddleware admits requests whose bearer token was issued for the
// :organization_id in the path. It sets User-ID and Organization-ID on the context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	organizationID, err := uuid.Parse(c.Param("organization_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid organization ID format")
		c.Abort()
		return
	}

	claims, err := h.authorizer.AuthorizeOrganization(ctx, tokenString, organizationID)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrOrganizationForbidden):
			apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this organization")
		case errors.Is(err, processor.ErrExpiredToken):
			apierrors.Unauthorized(c, "Authorization token has expired")
		default:
			apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		}
		c.Abort()
		return
	}

	c.Set("User-ID", claims.Subject)
	c.Set("Organization-ID", organizationID.String())
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID.String()},
	))
	c.Next()
}
