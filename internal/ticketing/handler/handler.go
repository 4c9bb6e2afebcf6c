package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"ambassador-server/internal/apierrors"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/ticketing/processor"
	trackerProcessor "ambassador-server/internal/tracker/processor"
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Connector manages an organization's ticketing connection
type Connector interface {
	SaveClientCredentials(ctx context.Context, organizationID uuid.UUID, clientID, clientSecret string) (processor.ConnectionStatus, error)
	AuthorizationURL(ctx context.Context, organizationID uuid.UUID) (string, error)
	CompleteAuthorization(ctx context.Context, state, code string) (uuid.UUID, error)
	Disconnect(ctx context.Context, organizationID uuid.UUID) error
	Status(ctx context.Context, organizationID uuid.UUID) (processor.ConnectionStatus, error)
}

// StatsSyncer refreshes tracker statistics for one organization
type StatsSyncer interface {
	SyncStats(ctx context.Context, organizationID uuid.UUID) (trackerProcessor.SyncResult, error)
}

type Handler struct {
	connector       Connector
	syncer          StatsSyncer
	afterConnectURL string
	logger          *observability.Logger
}

func New(connector Connector, syncer StatsSyncer, afterConnectURL string, logger *observability.Logger) Handler {
	return Handler{
		connector:       connector,
		syncer:          syncer,
		afterConnectURL: afterConnectURL,
		logger:          logger,
	}
}

// ClientCredentialsRequest is the OAuth client an admin registered with the provider
type ClientCredentialsRequest struct {
	ClientID     string `json:"client_id" binding:"required,min=1"`
	ClientSecret string `json:"client_secret" binding:"required,min=1"`
}

// HandleSaveClientCredentials stores the organization's OAuth client
func (h *Handler) HandleSaveClientCredentials(c *gin.Context) {
	ctx := c.Request.Context()

	organizationID, ok := h.organizationID(c)
	if !ok {
		return
	}

	var req ClientCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	status, err := h.connector.SaveClientCredentials(ctx, organizationID, req.ClientID, req.ClientSecret)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleAuthorize returns the provider consent URL
func (h *Handler) HandleAuthorize(c *gin.Context) {
	ctx := c.Request.Context()

	organizationID, ok := h.organizationID(c)
	if !ok {
		return
	}

	authURL, err := h.connector.AuthorizationURL(ctx, organizationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": authURL})
}

func (h *Handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	organizationID, ok := h.organizationID(c)
	if !ok {
		return
	}

	status, err := h.connector.Status(ctx, organizationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) HandleDisconnect(c *gin.Context) {
	ctx := c.Request.Context()

	organizationID, ok := h.organizationID(c)
	if !ok {
		return
	}

	if err := h.connector.Disconnect(ctx, organizationID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleSyncStats pulls ticket statistics for the organization's trackers now
func (h *Handler) HandleSyncStats(c *gin.Context) {
	ctx := c.Request.Context()

	organizationID, ok := h.organizationID(c)
	if !ok {
		return
	}

	result, err := h.syncer.SyncStats(ctx, organizationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleCallback is the OAuth redirect target. With an after-connect URL configured
// the browser is sent back to the admin app with a status query parameter.
func (h *Handler) HandleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if providerErr := c.Query("error"); providerErr != "" {
		h.logger.Warn(ctx, "ticketing authorization denied by provider: "+providerErr)
		h.finishCallback(c, "denied", uuid.Nil)
		return
	}

	organizationID, err := h.connector.CompleteAuthorization(ctx, c.Query("state"), c.Query("code"))
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrInvalidState):
			apierrors.BadRequest(c, "INVALID_STATE", "Authorization state is invalid or expired")
		case errors.Is(err, processor.ErrClientNotConfigured):
			apierrors.BadRequest(c, "TICKETING_NOT_CONFIGURED", "Ticketing client credentials are not configured")
		case errors.Is(err, processor.ErrAuthorizationFailed):
			h.finishCallback(c, "error", uuid.Nil)
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	h.finishCallback(c, "connected", organizationID)
}

func (h *Handler) finishCallback(c *gin.Context, status string, organizationID uuid.UUID) {
	if h.afterConnectURL == "" {
		if status != "connected" {
			apierrors.BadRequest(c, "AUTHORIZATION_FAILED", "Ticketing authorization failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "organization_id": organizationID})
		return
	}

	target, err := url.Parse(h.afterConnectURL)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	q := target.Query()
	q.Set("ticketing", status)
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}

// organizationID reads the organization the admin middleware authorized
func (h *Handler) organizationID(c *gin.Context) (uuid.UUID, bool) {
	orgIDStr, exists := c.Get("Organization-ID")
	if !exists {
		apierrors.Unauthorized(c, "Organization ID not found in context")
		return uuid.Nil, false
	}

	organizationID, err := uuid.Parse(orgIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid organization ID format")
		return uuid.Nil, false
	}
	return organizationID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidClientInput):
		apierrors.BadRequest(c, "INVALID_INPUT", "Client ID and client secret are required")
	case errors.Is(err, processor.ErrClientNotConfigured):
		apierrors.NotFound(c, "Ticketing client credentials are not configured")
	case errors.Is(err, processor.ErrNotConnected):
		apierrors.Conflict(c, "TICKETING_NOT_CONNECTED", "Ticketing integration is not connected")
	case errors.Is(err, processor.ErrProviderUnavailable):
		apierrors.ServiceUnavailable(c, "TICKETING_UNAVAILABLE", "Ticketing provider is temporarily unavailable", err)
	default:
		apierrors.InternalError(c, err)
	}
}
