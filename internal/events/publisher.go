package events

import (
	"ambassador-server/internal/clients/kafka"
	"ambassador-server/internal/observability"
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCampaignNotificationDispatched = "campaign.notification_dispatched"
	TypeAmbassadorTrackerCreated       = "ambassador.tracker_created"
)

// EventProducer is the transport the publisher writes to
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka
type Publisher struct {
	producer EventProducer
	now      func() time.Time
	logger   *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		now:      time.Now,
		logger:   logger,
	}
}

// CampaignDispatched describes the outcome of one campaign notification dispatch
type CampaignDispatched struct {
	OrganizationID uuid.UUID
	CampaignID     uuid.UUID
	EventID        uuid.UUID
	Audience       int
	Sent           int
	Failed         int
	InvalidTokens  int
}

// PublishCampaignDispatched publishes a campaign.notification_dispatched event
func (p *Publisher) PublishCampaignDispatched(ctx context.Context, d CampaignDispatched) error {
	campaignIDStr := d.CampaignID.String()
	event := kafka.EventMessage{
		ID:             uuid.New().String(),
		Type:           TypeCampaignNotificationDispatched,
		OrganizationID: d.OrganizationID.String(),
		CampaignID:     &campaignIDStr,
		Data: map[string]interface{}{
			"campaign_id":    campaignIDStr,
			"event_id":       d.EventID.String(),
			"audience":       d.Audience,
			"sent":           d.Sent,
			"failed":         d.Failed,
			"invalid_tokens": d.InvalidTokens,
		},
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}

// TrackerCreated describes a provider tracker created for an ambassador
type TrackerCreated struct {
	OrganizationID    uuid.UUID
	AmbassadorEventID uuid.UUID
	TrackerGUID       string
	TrackerURL        string
}

// PublishTrackerCreated publishes an ambassador.tracker_created event
func (p *Publisher) PublishTrackerCreated(ctx context.Context, t TrackerCreated) error {
	event := kafka.EventMessage{
		ID:             uuid.New().String(),
		Type:           TypeAmbassadorTrackerCreated,
		OrganizationID: t.OrganizationID.String(),
		Data: map[string]interface{}{
			"ambassador_event_id": t.AmbassadorEventID.String(),
			"tracker_guid":        t.TrackerGUID,
			"tracker_url":         t.TrackerURL,
		},
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	return p.producer.PublishEvent(ctx, event)
}
