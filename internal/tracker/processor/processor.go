package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"ambassador-server/internal/clients/ticketing"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	ticketingProcessor "ambassador-server/internal/ticketing/processor"
	"context"
	"time"

	"github.com/google/uuid"
)

// TrackerStore defines the database operations required by TrackerProcessor
type TrackerStore interface {
	GetTrackerContext(ctx context.Context, ambassadorEventID uuid.UUID) (store.TrackerContext, error)
	ClaimTrackerCreation(ctx context.Context, ambassadorEventID uuid.UUID, now time.Time, staleBefore time.Time) (bool, error)
	SetTrackerDetails(ctx context.Context, params store.SetTrackerDetailsParams) (store.TrackerLink, error)
	ReleaseTrackerClaim(ctx context.Context, ambassadorEventID uuid.UUID) error
	ListTrackedLinksByOrganization(ctx context.Context, organizationID uuid.UUID) ([]store.TrackerLink, error)
	UpdateTrackerStats(ctx context.Context, updates []store.TrackerStatsUpdate, syncedAt time.Time) error
	ListConnectedOrganizations(ctx context.Context, provider string) ([]uuid.UUID, error)
}

// TokenProvider hands out provider access tokens for an organization
type TokenProvider interface {
	GetValidToken(ctx context.Context, organizationID uuid.UUID) (ticketingProcessor.ValidToken, error)
}

// TrackerAPI is the provider tracker surface
type TrackerAPI interface {
	CreateTracker(ctx context.Context, creds ticketing.APICredentials, params ticketing.CreateTrackerParams) (ticketing.Tracker, error)
	FetchTrackerStats(ctx context.Context, creds ticketing.APICredentials) (map[string]int, error)
}

// Outcome is the result of a tracker creation attempt
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeAlreadyExists Outcome = "already_exists"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeNotConnected  Outcome = "not_connected"
	OutcomeInProgress    Outcome = "in_progress"
	OutcomeFailed        Outcome = "failed"
)

// defaultClaimTimeout bounds how long an abandoned creation claim blocks a retry
const defaultClaimTimeout = 2 * time.Minute

// TrackerResult reports what CreateTrackerIfAbsent did. Err is set only for OutcomeFailed.
type TrackerResult struct {
	Outcome Outcome
	Link    *store.TrackerLink
	Err     error
}

// SyncResult summarizes one organization's statistics pass
type SyncResult struct {
	TrackersSynced int `json:"trackersSynced"`
	TicketsSold    int `json:"ticketsSold"`
}

// SyncAllResult summarizes a statistics pass over every connected organization
type SyncAllResult struct {
	Organizations  int `json:"organizations"`
	Failed         int `json:"failed"`
	TrackersSynced int `json:"trackersSynced"`
	TicketsSold    int `json:"ticketsSold"`
}

type TrackerProcessor struct {
	store        TrackerStore
	tokens       TokenProvider
	api          TrackerAPI
	urlTemplate  string
	claimTimeout time.Duration
	now          func() time.Time
	logger       *observability.Logger
}

func New(store TrackerStore, tokens TokenProvider, api TrackerAPI, urlTemplate string, logger *observability.Logger) TrackerProcessor {
	return TrackerProcessor{
		store:        store,
		tokens:       tokens,
		api:          api,
		urlTemplate:  urlTemplate,
		claimTimeout: defaultClaimTimeout,
		now:          time.Now,
		logger:       logger,
	}
}
