package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"ambassador-server/internal/events"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	trackerProcessor "ambassador-server/internal/tracker/processor"
	"context"
	"errors"

	"github.com/google/uuid"
)

// AmbassadorStore defines the database operations required by AmbassadorProcessor
type AmbassadorStore interface {
	UpdateAmbassadorEventStatus(ctx context.Context, organizationID, ambassadorEventID uuid.UUID, status string) (store.AmbassadorEvent, error)
}

// TrackerCreator provisions provider trackers for accepted ambassadors
type TrackerCreator interface {
	CreateTrackerIfAbsent(ctx context.Context, ambassadorEventID uuid.UUID) trackerProcessor.TrackerResult
}

// EventPublisher announces tracker creation to other services
type EventPublisher interface {
	PublishTrackerCreated(ctx context.Context, t events.TrackerCreated) error
}

var ErrAmbassadorEventNotFound = errors.New("ambassador event not found")

// AcceptResult is the accepted ambassador plus whatever tracker provisioning did
type AcceptResult struct {
	AmbassadorEvent store.AmbassadorEvent
	Tracker         trackerProcessor.TrackerResult
}

type AmbassadorProcessor struct {
	store     AmbassadorStore
	trackers  TrackerCreator
	publisher EventPublisher
	logger    *observability.Logger
}

// New creates an AmbassadorProcessor. publisher may be nil.
func New(store AmbassadorStore, trackers TrackerCreator, publisher EventPublisher, logger *observability.Logger) AmbassadorProcessor {
	return AmbassadorProcessor{
		store:     store,
		trackers:  trackers,
		publisher: publisher,
		logger:    logger,
	}
}

// Accept marks the ambassador accepted and then provisions a tracker. Only the status
// update can fail the call; tracker provisioning is reported in the result.
func (p *AmbassadorProcessor) Accept(ctx context.Context, organizationID, ambassadorEventID uuid.UUID) (AcceptResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID.String()},
		observability.Field{Key: "ambassador_event_id", Value: ambassadorEventID.String()},
	)

	ae, err := p.store.UpdateAmbassadorEventStatus(ctx, organizationID, ambassadorEventID, store.AmbassadorStatusAccepted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AcceptResult{}, ErrAmbassadorEventNotFound
		}
		p.logger.Error(ctx, "failed to accept ambassador", err)
		return AcceptResult{}, err
	}

	tracker := p.trackers.CreateTrackerIfAbsent(ctx, ambassadorEventID)
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracker_outcome", Value: string(tracker.Outcome)})
	if tracker.Outcome == trackerProcessor.OutcomeFailed {
		p.logger.InfoWithError(ctx, "ambassador accepted without tracker", tracker.Err)
	} else {
		p.logger.Info(ctx, "ambassador accepted")
	}

	if tracker.Outcome == trackerProcessor.OutcomeCreated && p.publisher != nil && tracker.Link != nil {
		created := events.TrackerCreated{
			OrganizationID:    organizationID,
			AmbassadorEventID: ambassadorEventID,
		}
		if tracker.Link.TrackerGUID != nil {
			created.TrackerGUID = *tracker.Link.TrackerGUID
		}
		if tracker.Link.TrackerURL != nil {
			created.TrackerURL = *tracker.Link.TrackerURL
		}
		if err := p.publisher.PublishTrackerCreated(context.WithoutCancel(ctx), created); err != nil {
			p.logger.Error(ctx, "failed to publish tracker created event", err)
		}
	}

	return AcceptResult{AmbassadorEvent: ae, Tracker: tracker}, nil
}
