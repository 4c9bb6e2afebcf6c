package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"ambassador-server/internal/ambassador/processor"
	"ambassador-server/internal/apierrors"
	"ambassador-server/internal/observability"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Acceptor accepts an ambassador into an event
type Acceptor interface {
	Accept(ctx context.Context, organizationID, ambassadorEventID uuid.UUID) (processor.AcceptResult, error)
}

type Handler struct {
	acceptor Acceptor
	logger   *observability.Logger
}

func New(acceptor Acceptor, logger *observability.Logger) Handler {
	return Handler{
		acceptor: acceptor,
		logger:   logger,
	}
}

// TrackerResponse reports tracker provisioning for the accepted ambassador
type TrackerResponse struct {
	Outcome string  `json:"outcome"`
	GUID    *string `json:"guid,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// AcceptResponse is returned once the ambassador is accepted
type AcceptResponse struct {
	ID        uuid.UUID       `json:"id"`
	EventID   uuid.UUID       `json:"event_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Status    string          `json:"status"`
	UpdatedAt time.Time       `json:"updated_at"`
	Tracker   TrackerResponse `json:"tracker"`
}

// HandleAccept accepts an ambassador. Tracker provisioning never changes the status code.
func (h *Handler) HandleAccept(c *gin.Context) {
	ctx := c.Request.Context()

	orgIDStr, exists := c.Get("Organization-ID")
	if !exists {
		apierrors.Unauthorized(c, "Organization ID not found in context")
		return
	}
	organizationID, err := uuid.Parse(orgIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid organization ID format")
		return
	}

	ambassadorEventID, err := uuid.Parse(c.Param("ambassador_event_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ambassador event ID format")
		return
	}

	result, err := h.acceptor.Accept(ctx, organizationID, ambassadorEventID)
	if err != nil {
		if errors.Is(err, processor.ErrAmbassadorEventNotFound) {
			apierrors.NotFound(c, "Ambassador event not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	tracker := TrackerResponse{Outcome: string(result.Tracker.Outcome)}
	if result.Tracker.Link != nil {
		tracker.GUID = result.Tracker.Link.TrackerGUID
		tracker.URL = result.Tracker.Link.TrackerURL
	}

	ae := result.AmbassadorEvent
	c.JSON(http.StatusOK, AcceptResponse{
		ID:        ae.ID,
		EventID:   ae.EventID,
		UserID:    ae.UserID,
		Status:    ae.Status,
		UpdatedAt: ae.UpdatedAt,
		Tracker:   tracker,
	})
}
