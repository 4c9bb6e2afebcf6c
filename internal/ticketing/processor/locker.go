package processor

import (
	"ambassador-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrLockTimeout = errors.New("timed out waiting for refresh lease")

// LeaseRefreshLocker implements RefreshLocker on top of a SET NX lease
type LeaseRefreshLocker struct {
	client LeaseClient
	ttl    time.Duration
	wait   time.Duration
	poll   time.Duration
	logger *observability.Logger
}

func NewLeaseRefreshLocker(client LeaseClient, logger *observability.Logger) *LeaseRefreshLocker {
	return &LeaseRefreshLocker{
		client: client,
		ttl:    30 * time.Second,
		wait:   20 * time.Second,
		poll:   100 * time.Millisecond,
		logger: logger,
	}
}

func refreshLockKey(organizationID uuid.UUID) string {
	return fmt.Sprintf("ticketing:token-refresh:%s", organizationID)
}

// Lock blocks until the lease is held, the wait budget runs out, or ctx is done
func (l *LeaseRefreshLocker) Lock(ctx context.Context, organizationID uuid.UUID) (func(), error) {
	key := refreshLockKey(organizationID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.AcquireLock(ctx, key, token, l.ttl)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// Release must run even if the caller's context was cancelled.
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := l.client.ReleaseLock(releaseCtx, key, token); err != nil {
					l.logger.Error(ctx, "failed to release refresh lease", err)
				}
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.poll):
		}
	}
}
