package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlUpdateAmbassadorEventStatus = `
UPDATE ambassador_events ae
SET status = $3, updated_at = NOW()
FROM events e
WHERE ae.id = $2 AND ae.event_id = e.id AND e.organization_id = $1
RETURNING ae.id, ae.event_id, ae.user_id, ae.status, ae.created_at, ae.updated_at
`

// UpdateAmbassadorEventStatus sets the status of an ambassador event owned by the organization
func (s *Store) UpdateAmbassadorEventStatus(ctx context.Context, organizationID, ambassadorEventID uuid.UUID, status string) (AmbassadorEvent, error) {
	var ae AmbassadorEvent
	err := s.db.GetContext(ctx, &ae, sqlUpdateAmbassadorEventStatus, organizationID, ambassadorEventID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AmbassadorEvent{}, ErrNotFound
		}
		return AmbassadorEvent{}, fmt.Errorf("failed to update ambassador event status: %w", err)
	}
	return ae, nil
}

const sqlGetTrackerContext = `
SELECT ae.id AS ambassador_event_id,
       e.organization_id,
       e.id AS event_id,
       e.name AS event_name,
       e.ticketing_shop_id,
       u.id AS user_id,
       u.first_name,
       u.last_name,
       tl.tracker_guid
FROM ambassador_events ae
JOIN events e ON e.id = ae.event_id
JOIN users u ON u.id = ae.user_id
LEFT JOIN tracker_links tl ON tl.ambassador_event_id = ae.id
WHERE ae.id = $1
`

// GetTrackerContext loads the event, ambassador and existing tracker for an ambassador event
func (s *Store) GetTrackerContext(ctx context.Context, ambassadorEventID uuid.UUID) (TrackerContext, error) {
	var tc TrackerContext
	err := s.db.GetContext(ctx, &tc, sqlGetTrackerContext, ambassadorEventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackerContext{}, ErrNotFound
		}
		return TrackerContext{}, fmt.Errorf("failed to get tracker context: %w", err)
	}
	return tc, nil
}
