package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const sqlGetEventAudienceDeviceTokens = `
SELECT DISTINCT de.device_token
FROM ambassador_events ae
JOIN device_endpoints de ON de.user_id = ae.user_id
WHERE ae.event_id = $1 AND ae.status = 'ACCEPTED'
ORDER BY de.device_token
`

// GetEventAudienceDeviceTokens returns the distinct device tokens of every
// accepted ambassador of an event. Ambassadors without a token are absent.
func (s *Store) GetEventAudienceDeviceTokens(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	var tokens []string
	err := s.db.SelectContext(ctx, &tokens, sqlGetEventAudienceDeviceTokens, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event audience device tokens: %w", err)
	}
	return tokens, nil
}

const sqlDeleteDeviceEndpointsByToken = `
DELETE FROM device_endpoints
WHERE device_token = ANY($1)
`

// DeleteDeviceEndpointsByToken removes endpoints the push gateway reported as dead
func (s *Store) DeleteDeviceEndpointsByToken(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, sqlDeleteDeviceEndpointsByToken, pq.Array(tokens))
	if err != nil {
		return 0, fmt.Errorf("failed to delete device endpoints: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}
