package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"ambassador-server/internal/apierrors"
	"ambassador-server/internal/dispatch/processor"
	"ambassador-server/internal/observability"
	trackerProcessor "ambassador-server/internal/tracker/processor"
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DueProcessor runs one dispatch pass
type DueProcessor interface {
	ProcessDue(ctx context.Context, now time.Time) (processor.DispatchSummary, error)
}

// TrackerSyncer runs one statistics pass over every connected organization
type TrackerSyncer interface {
	SyncAllOrganizations(ctx context.Context) (trackerProcessor.SyncAllResult, error)
}

type Handler struct {
	dispatcher DueProcessor
	trackers   TrackerSyncer
	cronSecret string
	now        func() time.Time
	logger     *observability.Logger
}

func New(dispatcher DueProcessor, trackers TrackerSyncer, cronSecret string, logger *observability.Logger) Handler {
	return Handler{
		dispatcher: dispatcher,
		trackers:   trackers,
		cronSecret: cronSecret,
		now:        time.Now,
		logger:     logger,
	}
}

// RequireCronSecret guards trigger endpoints. The secret may arrive as ?secret= or as a
// bearer token. With no secret configured the endpoints are open.
func (h *Handler) RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cronSecret == "" {
			c.Next()
			return
		}

		provided := c.Query("secret")
		if provided == "" {
			if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
				provided = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.cronSecret)) != 1 {
			h.logger.Warn(c.Request.Context(), "rejected trigger request with invalid cron secret")
			apierrors.Unauthorized(c, "Invalid cron secret")
			c.Abort()
			return
		}
		c.Next()
	}
}

// HandleDispatchDue sends notifications for every campaign that became due
func (h *Handler) HandleDispatchDue(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.dispatcher.ProcessDue(ctx, h.now())
	if err != nil {
		if errors.Is(err, processor.ErrNotConfigured) {
			apierrors.ServiceUnavailable(c, "PUSH_NOT_CONFIGURED", "Push notifications are not configured", err)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleSyncTrackers refreshes ticket statistics for every connected organization
func (h *Handler) HandleSyncTrackers(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.trackers.SyncAllOrganizations(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
