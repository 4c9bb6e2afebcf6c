package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const campaignColumns = `
id, organization_id, event_id, name, status, start_date, end_date, send_app_notification,
notification_title, notification_message, sent_at, notifications_sent, notifications_failed,
dispatch_completed_at, created_at, updated_at`

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetDueNotificationCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'ACTIVE'
  AND send_app_notification = TRUE
  AND sent_at IS NULL
  AND start_date <= $1
ORDER BY start_date ASC
`

// GetDueNotificationCampaigns returns active campaigns whose notification has
// not been sent and whose start date has passed
func (s *Store) GetDueNotificationCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueNotificationCampaigns, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notification campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlClaimCampaignNotification = `
UPDATE campaigns
SET sent_at = $2, updated_at = NOW()
WHERE id = $1 AND sent_at IS NULL
`

// ClaimCampaignNotification sets sent_at if it is still unset. Exactly one
// concurrent caller observes true for a given campaign.
func (s *Store) ClaimCampaignNotification(ctx context.Context, campaignID uuid.UUID, now time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClaimCampaignNotification, campaignID, now)
	if err != nil {
		return false, fmt.Errorf("failed to claim campaign notification: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows == 1, nil
}

// RecordCampaignDispatchParams represents the outcome of one notification dispatch
type RecordCampaignDispatchParams struct {
	CampaignID  uuid.UUID
	Sent        int
	Failed      int
	CompletedAt time.Time
}

const sqlRecordCampaignDispatch = `
UPDATE campaigns
SET notifications_sent = $2,
    notifications_failed = $3,
    dispatch_completed_at = $4,
    updated_at = NOW()
WHERE id = $1
`

// RecordCampaignDispatch stores delivery counters after a dispatch attempt
func (s *Store) RecordCampaignDispatch(ctx context.Context, params RecordCampaignDispatchParams) error {
	res, err := s.db.ExecContext(ctx, sqlRecordCampaignDispatch,
		params.CampaignID,
		params.Sent,
		params.Failed,
		params.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to record campaign dispatch: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
