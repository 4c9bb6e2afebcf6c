package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"ambassador-server/internal/events"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/push/apns"
	"ambassador-server/internal/store"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DispatchStore defines the database operations required by DispatchProcessor
type DispatchStore interface {
	GetDueNotificationCampaigns(ctx context.Context, now time.Time) ([]store.Campaign, error)
	ClaimCampaignNotification(ctx context.Context, campaignID uuid.UUID, now time.Time) (bool, error)
	GetEventAudienceDeviceTokens(ctx context.Context, eventID uuid.UUID) ([]string, error)
	RecordCampaignDispatch(ctx context.Context, params store.RecordCampaignDispatchParams) error
	DeleteDeviceEndpointsByToken(ctx context.Context, tokens []string) (int64, error)
}

// Pusher delivers one notification to many devices
type Pusher interface {
	Ready() error
	SendBatch(ctx context.Context, deviceTokens []string, p apns.Payload) (apns.BatchResult, error)
}

// EventPublisher announces dispatch outcomes to other services
type EventPublisher interface {
	PublishCampaignDispatched(ctx context.Context, d events.CampaignDispatched) error
}

// ErrNotConfigured means push delivery cannot work at all; no campaign was claimed.
var ErrNotConfigured = errors.New("campaign dispatch is not configured")

// DispatchSummary is returned to the cron trigger
type DispatchSummary struct {
	CampaignsProcessed int `json:"campaignsProcessed"`
	NotificationsSent  int `json:"notificationsSent"`
}

type DispatchProcessor struct {
	store     DispatchStore
	pusher    Pusher
	publisher EventPublisher
	now       func() time.Time
	logger    *observability.Logger
}

// New creates a DispatchProcessor. publisher may be nil.
func New(store DispatchStore, pusher Pusher, publisher EventPublisher, logger *observability.Logger) DispatchProcessor {
	return DispatchProcessor{
		store:     store,
		pusher:    pusher,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// ProcessDue sends the notification of every due campaign at most once. Campaigns
// claimed by a concurrent invocation are skipped.
func (p *DispatchProcessor) ProcessDue(ctx context.Context, now time.Time) (DispatchSummary, error) {
	if err := p.pusher.Ready(); err != nil {
		p.logger.Error(ctx, "push delivery is not configured, skipping dispatch", err)
		return DispatchSummary{}, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	campaigns, err := p.store.GetDueNotificationCampaigns(ctx, now)
	if err != nil {
		p.logger.Error(ctx, "failed to load due campaigns", err)
		return DispatchSummary{}, err
	}

	var summary DispatchSummary
	for _, campaign := range campaigns {
		campaignCtx := observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
			observability.Field{Key: "organization_id", Value: campaign.OrganizationID.String()},
		)

		claimed, err := p.store.ClaimCampaignNotification(campaignCtx, campaign.ID, now)
		if err != nil {
			p.logger.Error(campaignCtx, "failed to claim campaign notification", err)
			continue
		}
		if !claimed {
			p.logger.Debug(campaignCtx, "campaign notification claimed by another run")
			continue
		}

		summary.CampaignsProcessed++
		summary.NotificationsSent += p.dispatchCampaign(campaignCtx, campaign)
	}

	if summary.CampaignsProcessed > 0 {
		p.logger.Info(ctx, fmt.Sprintf("dispatched %d campaigns, %d notifications sent", summary.CampaignsProcessed, summary.NotificationsSent))
	}
	return summary, nil
}

// dispatchCampaign runs after a successful claim. Whatever happens, the outcome is
// recorded; the claim already prevents a second attempt.
func (p *DispatchProcessor) dispatchCampaign(ctx context.Context, campaign store.Campaign) int {
	var result apns.BatchResult
	audience := 0

	tokens, err := p.store.GetEventAudienceDeviceTokens(ctx, campaign.EventID)
	if err != nil {
		p.logger.Error(ctx, "failed to load campaign audience", err)
	} else {
		audience = len(tokens)
	}

	if audience > 0 {
		result, err = p.pusher.SendBatch(ctx, tokens, apns.Payload{
			Title:      campaign.NotificationTitle,
			Body:       campaign.NotificationMessage,
			CampaignID: campaign.ID.String(),
		})
		if err != nil {
			p.logger.Error(ctx, "campaign push batch failed", err)
			result.Failed = audience - result.Sent
		}
	}

	// The request may already be cancelled; the outcome must still be stored.
	recordCtx := context.WithoutCancel(ctx)
	if err := p.store.RecordCampaignDispatch(recordCtx, store.RecordCampaignDispatchParams{
		CampaignID:  campaign.ID,
		Sent:        result.Sent,
		Failed:      result.Failed,
		CompletedAt: p.now(),
	}); err != nil {
		p.logger.Error(ctx, "failed to record campaign dispatch outcome", err)
	}

	if len(result.InvalidTokens) > 0 {
		removed, err := p.store.DeleteDeviceEndpointsByToken(recordCtx, result.InvalidTokens)
		if err != nil {
			p.logger.Error(ctx, "failed to prune invalid device tokens", err)
		} else {
			p.logger.Info(ctx, fmt.Sprintf("pruned %d invalid device tokens", removed))
		}
	}

	if p.publisher != nil {
		if err := p.publisher.PublishCampaignDispatched(recordCtx, events.CampaignDispatched{
			OrganizationID: campaign.OrganizationID,
			CampaignID:     campaign.ID,
			EventID:        campaign.EventID,
			Audience:       audience,
			Sent:           result.Sent,
			Failed:         result.Failed,
			InvalidTokens:  len(result.InvalidTokens),
		}); err != nil {
			p.logger.Error(ctx, "failed to publish campaign dispatched event", err)
		}
	}

	outcome := "sent"
	switch {
	case audience == 0:
		outcome = "empty_audience"
	case result.Sent == 0:
		outcome = "failed"
	case result.Failed > 0:
		outcome = "partial"
	}
	campaignDispatchCounter.WithLabelValues(outcome).Inc()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "audience", Value: audience},
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
	)
	p.logger.Info(ctx, "campaign notification dispatched")
	return result.Sent
}
