package store

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTicketing identifies the ticketing provider integration
const ProviderTicketing = "ticketing"

// Campaign statuses
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusArchived  = "ARCHIVED"
)

// Ambassador event statuses
const (
	AmbassadorStatusPending  = "PENDING"
	AmbassadorStatusAccepted = "ACCEPTED"
	AmbassadorStatusRejected = "REJECTED"
)

// IntegrationCredential holds one organization's OAuth state with an external provider.
// AccessToken and RefreshToken are either both set or both nil.
type IntegrationCredential struct {
	ID                    uuid.UUID  `db:"id"`
	OrganizationID        uuid.UUID  `db:"organization_id"`
	Provider              string     `db:"provider"`
	ClientID              string     `db:"client_id"`
	ClientSecret          string     `db:"client_secret"`
	AccessToken           *string    `db:"access_token"`
	RefreshToken          *string    `db:"refresh_token"`
	AccessTokenExpiresAt  *time.Time `db:"access_token_expires_at"`
	RefreshTokenExpiresAt *time.Time `db:"refresh_token_expires_at"`
	ProviderCompanyID     *string    `db:"provider_company_id"`
	ConnectedAt           *time.Time `db:"connected_at"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

// IsConnected reports whether the OAuth handshake completed and tokens are held
func (c IntegrationCredential) IsConnected() bool {
	return c.ConnectedAt != nil && c.AccessToken != nil && c.RefreshToken != nil
}

// Campaign is a point-earning campaign; only the notification fields are modelled here.
type Campaign struct {
	ID                  uuid.UUID  `db:"id"`
	OrganizationID      uuid.UUID  `db:"organization_id"`
	EventID             uuid.UUID  `db:"event_id"`
	Name                string     `db:"name"`
	Status              string     `db:"status"`
	StartDate           time.Time  `db:"start_date"`
	EndDate             *time.Time `db:"end_date"`
	SendAppNotification bool       `db:"send_app_notification"`
	NotificationTitle   string     `db:"notification_title"`
	NotificationMessage string     `db:"notification_message"`
	SentAt              *time.Time `db:"sent_at"`
	NotificationsSent   int        `db:"notifications_sent"`
	NotificationsFailed int        `db:"notifications_failed"`
	DispatchCompletedAt *time.Time `db:"dispatch_completed_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// AmbassadorEvent links a user to an event they applied to promote
type AmbassadorEvent struct {
	ID        uuid.UUID `db:"id"`
	EventID   uuid.UUID `db:"event_id"`
	UserID    uuid.UUID `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TrackerLink holds the provider tracking object for one ambassador on one event
type TrackerLink struct {
	ID                uuid.UUID  `db:"id"`
	AmbassadorEventID uuid.UUID  `db:"ambassador_event_id"`
	TrackerGUID       *string    `db:"tracker_guid"`
	TrackerCode       *string    `db:"tracker_code"`
	TrackerURL        *string    `db:"tracker_url"`
	TicketsSold       int        `db:"tickets_sold"`
	LastSyncedAt      *time.Time `db:"last_synced_at"`
	CreationClaimedAt *time.Time `db:"creation_claimed_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// TrackerContext is everything needed to create a tracker for an ambassador event
type TrackerContext struct {
	AmbassadorEventID uuid.UUID `db:"ambassador_event_id"`
	OrganizationID    uuid.UUID `db:"organization_id"`
	EventID           uuid.UUID `db:"event_id"`
	EventName         string    `db:"event_name"`
	TicketingShopID   *string   `db:"ticketing_shop_id"`
	UserID            uuid.UUID `db:"user_id"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	TrackerGUID       *string   `db:"tracker_guid"`
}
