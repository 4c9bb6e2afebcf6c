//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Organization / User Fixtures ---

func (f *Fixtures) CreateOrganization() uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id,
		`INSERT INTO organizations (name) VALUES ($1) RETURNING id`, "Org "+uuid.NewString()[:8])
	require.NoError(f.t, err, "failed to create test organization")
	return id
}

func (f *Fixtures) CreateUser(firstName, lastName string) uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id,
		`INSERT INTO users (first_name, last_name) VALUES ($1, $2) RETURNING id`, firstName, lastName)
	require.NoError(f.t, err, "failed to create test user")
	return id
}

// --- Event Fixtures ---

// EventOpts customizes event creation.
type EventOpts struct {
	Name            string
	TicketingShopID *string
}

func (f *Fixtures) CreateEvent(organizationID uuid.UUID, opts ...func(*EventOpts)) uuid.UUID {
	f.t.Helper()
	o := EventOpts{Name: "Launch Party"}
	for _, fn := range opts {
		fn(&o)
	}
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id,
		`INSERT INTO events (organization_id, name, ticketing_shop_id) VALUES ($1, $2, $3) RETURNING id`,
		organizationID, o.Name, o.TicketingShopID)
	require.NoError(f.t, err, "failed to create test event")
	return id
}

func (f *Fixtures) CreateAmbassadorEvent(eventID, userID uuid.UUID, status string) uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id,
		`INSERT INTO ambassador_events (event_id, user_id, status) VALUES ($1, $2, $3) RETURNING id`,
		eventID, userID, status)
	require.NoError(f.t, err, "failed to create test ambassador event")
	return id
}

func (f *Fixtures) CreateDeviceEndpoint(userID uuid.UUID, token string) {
	f.t.Helper()
	_, err := f.testDB.GetDB().ExecContext(f.ctx,
		`INSERT INTO device_endpoints (user_id, device_token) VALUES ($1, $2)`, userID, token)
	require.NoError(f.t, err, "failed to create test device endpoint")
}

// --- Campaign Fixtures ---

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Status              string
	StartDate           time.Time
	SendAppNotification bool
	SentAt              *time.Time
}

func (f *Fixtures) CreateCampaign(organizationID, eventID uuid.UUID, opts ...func(*CampaignOpts)) uuid.UUID {
	f.t.Helper()
	o := CampaignOpts{
		Status:              CampaignStatusActive,
		StartDate:           time.Now().Add(-time.Hour),
		SendAppNotification: true,
	}
	for _, fn := range opts {
		fn(&o)
	}
	var id uuid.UUID
	err := f.testDB.GetDB().GetContext(f.ctx, &id, `
		INSERT INTO campaigns (organization_id, event_id, name, status, start_date, send_app_notification,
		                       notification_title, notification_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		organizationID, eventID, "Spring Push", o.Status, o.StartDate, o.SendAppNotification,
		"New campaign", "Earn double points this week", o.SentAt)
	require.NoError(f.t, err, "failed to create test campaign")
	return id
}

// --- Credential Fixtures ---

func (f *Fixtures) CreateConnectedCredential(organizationID uuid.UUID, refreshToken string, accessExpiresAt time.Time) IntegrationCredential {
	f.t.Helper()
	_, err := f.testDB.Store.UpsertIntegrationClient(f.ctx, UpsertIntegrationClientParams{
		OrganizationID: organizationID,
		Provider:       ProviderTicketing,
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
	})
	require.NoError(f.t, err)

	company := "company-1"
	cred, err := f.testDB.Store.SaveIntegrationTokens(f.ctx, SaveIntegrationTokensParams{
		OrganizationID:        organizationID,
		Provider:              ProviderTicketing,
		AccessToken:           "access-" + refreshToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshTokenExpiresAt: time.Now().Add(365 * 24 * time.Hour),
		ProviderCompanyID:     &company,
		ConnectedAt:           time.Now(),
	})
	require.NoError(f.t, err)
	return cred
}
