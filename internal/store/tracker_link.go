package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const trackerLinkColumns = `
id, ambassador_event_id, tracker_guid, tracker_code, tracker_url, tickets_sold,
last_synced_at, creation_claimed_at, created_at, updated_at`

const sqlGetTrackerLinkByAmbassadorEvent = `
SELECT ` + trackerLinkColumns + `
FROM tracker_links
WHERE ambassador_event_id = $1
`

// GetTrackerLinkByAmbassadorEvent retrieves the tracker link for an ambassador event
func (s *Store) GetTrackerLinkByAmbassadorEvent(ctx context.Context, ambassadorEventID uuid.UUID) (TrackerLink, error) {
	var link TrackerLink
	err := s.db.GetContext(ctx, &link, sqlGetTrackerLinkByAmbassadorEvent, ambassadorEventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackerLink{}, ErrNotFound
		}
		return TrackerLink{}, fmt.Errorf("failed to get tracker link: %w", err)
	}
	return link, nil
}

// A claim older than staleBefore is treated as abandoned by a crashed caller.
const sqlClaimTrackerCreation = `
INSERT INTO tracker_links (ambassador_event_id, creation_claimed_at)
VALUES ($1, $2)
ON CONFLICT (ambassador_event_id) DO UPDATE
SET creation_claimed_at = EXCLUDED.creation_claimed_at, updated_at = NOW()
WHERE tracker_links.tracker_guid IS NULL
  AND (tracker_links.creation_claimed_at IS NULL OR tracker_links.creation_claimed_at < $3)
RETURNING id
`

// ClaimTrackerCreation reserves the right to create the provider tracker for an
// ambassador event. It returns false when a tracker exists or another caller holds a live claim.
func (s *Store) ClaimTrackerCreation(ctx context.Context, ambassadorEventID uuid.UUID, now time.Time, staleBefore time.Time) (bool, error) {
	var id uuid.UUID
	err := s.db.GetContext(ctx, &id, sqlClaimTrackerCreation, ambassadorEventID, now, staleBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim tracker creation: %w", err)
	}
	return true, nil
}

// SetTrackerDetailsParams represents a provider tracker created for an ambassador event
type SetTrackerDetailsParams struct {
	AmbassadorEventID uuid.UUID
	TrackerGUID       string
	TrackerCode       string
	TrackerURL        string
}

const sqlSetTrackerDetails = `
UPDATE tracker_links
SET tracker_guid = $2,
    tracker_code = $3,
    tracker_url = $4,
    creation_claimed_at = NULL,
    updated_at = NOW()
WHERE ambassador_event_id = $1 AND tracker_guid IS NULL
RETURNING ` + trackerLinkColumns

// SetTrackerDetails stores the provider tracker. The guid is written at most once.
func (s *Store) SetTrackerDetails(ctx context.Context, params SetTrackerDetailsParams) (TrackerLink, error) {
	var link TrackerLink
	err := s.db.GetContext(ctx, &link, sqlSetTrackerDetails,
		params.AmbassadorEventID,
		params.TrackerGUID,
		params.TrackerCode,
		params.TrackerURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackerLink{}, ErrNotFound
		}
		return TrackerLink{}, fmt.Errorf("failed to set tracker details: %w", err)
	}
	return link, nil
}

const sqlReleaseTrackerClaim = `
UPDATE tracker_links
SET creation_claimed_at = NULL, updated_at = NOW()
WHERE ambassador_event_id = $1 AND tracker_guid IS NULL
`

// ReleaseTrackerClaim drops a creation claim after a failed provider call
func (s *Store) ReleaseTrackerClaim(ctx context.Context, ambassadorEventID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlReleaseTrackerClaim, ambassadorEventID)
	if err != nil {
		return fmt.Errorf("failed to release tracker claim: %w", err)
	}
	return nil
}

const sqlListTrackedLinksByOrganization = `
SELECT tl.id, tl.ambassador_event_id, tl.tracker_guid, tl.tracker_code, tl.tracker_url, tl.tickets_sold,
       tl.last_synced_at, tl.creation_claimed_at, tl.created_at, tl.updated_at
FROM tracker_links tl
JOIN ambassador_events ae ON ae.id = tl.ambassador_event_id
JOIN events e ON e.id = ae.event_id
WHERE e.organization_id = $1 AND tl.tracker_guid IS NOT NULL
ORDER BY tl.created_at
`

// ListTrackedLinksByOrganization returns every tracker link with a provider guid for an organization
func (s *Store) ListTrackedLinksByOrganization(ctx context.Context, organizationID uuid.UUID) ([]TrackerLink, error) {
	var links []TrackerLink
	err := s.db.SelectContext(ctx, &links, sqlListTrackedLinksByOrganization, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked links: %w", err)
	}
	return links, nil
}

// TrackerStatsUpdate is the authoritative ticket count for one tracker link
type TrackerStatsUpdate struct {
	TrackerLinkID uuid.UUID
	TicketsSold   int
}

const sqlUpdateTrackerStats = `
UPDATE tracker_links
SET tickets_sold = $2, last_synced_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateTrackerStats overwrites ticket counts for a batch of tracker links in one transaction
func (s *Store) UpdateTrackerStats(ctx context.Context, updates []TrackerStatsUpdate, syncedAt time.Time) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, sqlUpdateTrackerStats)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.TrackerLinkID, u.TicketsSold, syncedAt); err != nil {
			return fmt.Errorf("failed to update tracker stats for %s: %w", u.TrackerLinkID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
