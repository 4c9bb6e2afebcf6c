package processor

import (
	"ambassador-server/internal/clients/ticketing"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	// AccessTokenSafetyBuffer is the minimum remaining lifetime of a token handed to callers
	AccessTokenSafetyBuffer = 5 * time.Minute
	// DefaultRefreshTokenLifetime applies when the provider does not state one
	DefaultRefreshTokenLifetime = 365 * 24 * time.Hour
)

var (
	ErrNotConnected = errors.New("ticketing integration is not connected")
	// ErrTokenExpiredUnrecoverable means the integration was demoted and an admin must reconnect
	ErrTokenExpiredUnrecoverable = fmt.Errorf("ticketing authorization expired, reconnect required: %w", ErrNotConnected)
	// ErrProviderUnavailable is a transient failure; the stored credential is left intact
	ErrProviderUnavailable = errors.New("ticketing provider unavailable")
)

// ValidToken is an access token with at least AccessTokenSafetyBuffer of lifetime left
type ValidToken struct {
	AccessToken       string
	ProviderCompanyID string
	ExpiresAt         time.Time
}

type TokenManager struct {
	store     CredentialStore
	refresher TokenRefresher
	locker    RefreshLocker
	group     singleflight.Group
	now       func() time.Time
	logger    *observability.Logger
}

// NewTokenManager creates a TokenManager. locker is an optional lease taken before the
// store's credential lock and may be nil.
func NewTokenManager(store CredentialStore, refresher TokenRefresher, locker RefreshLocker, logger *observability.Logger) *TokenManager {
	return &TokenManager{
		store:     store,
		refresher: refresher,
		locker:    locker,
		now:       time.Now,
		logger:    logger,
	}
}

// GetValidToken returns a usable access token for the organization, refreshing it when
// it expires within AccessTokenSafetyBuffer. Concurrent callers for the same
// organization share one refresh.
func (m *TokenManager) GetValidToken(ctx context.Context, organizationID uuid.UUID) (ValidToken, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	cred, err := m.loadConnected(ctx, organizationID)
	if err != nil {
		return ValidToken{}, err
	}
	if token, ok := m.usable(cred); ok {
		return token, nil
	}

	// The refresh outlives any single caller: a consumed refresh token must be persisted.
	v, err, _ := m.group.Do(organizationID.String(), func() (interface{}, error) {
		return m.refresh(context.WithoutCancel(ctx), organizationID)
	})
	if err != nil {
		return ValidToken{}, err
	}
	return v.(ValidToken), nil
}

func (m *TokenManager) loadConnected(ctx context.Context, organizationID uuid.UUID) (store.IntegrationCredential, error) {
	cred, err := m.store.GetIntegrationCredential(ctx, organizationID, store.ProviderTicketing)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.IntegrationCredential{}, ErrNotConnected
		}
		m.logger.Error(ctx, "failed to load ticketing credential", err)
		return store.IntegrationCredential{}, fmt.Errorf("failed to load ticketing credential: %w", err)
	}
	if !cred.IsConnected() {
		return store.IntegrationCredential{}, ErrNotConnected
	}
	return cred, nil
}

func (m *TokenManager) usable(cred store.IntegrationCredential) (ValidToken, bool) {
	if cred.AccessToken == nil || cred.AccessTokenExpiresAt == nil {
		return ValidToken{}, false
	}
	if cred.AccessTokenExpiresAt.Sub(m.now()) < AccessTokenSafetyBuffer {
		return ValidToken{}, false
	}
	token := ValidToken{
		AccessToken: *cred.AccessToken,
		ExpiresAt:   *cred.AccessTokenExpiresAt,
	}
	if cred.ProviderCompanyID != nil {
		token.ProviderCompanyID = *cred.ProviderCompanyID
	}
	return token, true
}

func (m *TokenManager) refresh(ctx context.Context, organizationID uuid.UUID) (ValidToken, error) {
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, organizationID)
		if err != nil {
			// The credential lock below still serializes the refresh.
			m.logger.InfoWithError(ctx, "proceeding with token refresh without distributed lease", err)
		} else {
			defer unlock()
		}
	}

	// Held from the re-read until the rotated pair is persisted: a second caller
	// replaying the consumed refresh token would be rejected and demote a healthy integration.
	unlockCredential, err := m.store.LockIntegrationRefresh(ctx, organizationID, store.ProviderTicketing)
	if err != nil {
		m.logger.Error(ctx, "failed to lock ticketing credential for refresh", err)
		return ValidToken{}, fmt.Errorf("failed to lock ticketing credential: %w", err)
	}
	defer unlockCredential()

	// Another process may have rotated the token while we waited.
	cred, err := m.loadConnected(ctx, organizationID)
	if err != nil {
		return ValidToken{}, err
	}
	if token, ok := m.usable(cred); ok {
		return token, nil
	}

	now := m.now()
	usedRefreshToken := *cred.RefreshToken

	if cred.RefreshTokenExpiresAt != nil && !now.Before(*cred.RefreshTokenExpiresAt) {
		m.logger.Warn(ctx, "ticketing refresh token expired, demoting integration")
		m.demote(ctx, organizationID, usedRefreshToken)
		tokenRefreshCounter.WithLabelValues("expired").Inc()
		return ValidToken{}, ErrTokenExpiredUnrecoverable
	}

	resp, err := m.refresher.RefreshToken(ctx, cred.ClientID, cred.ClientSecret, usedRefreshToken)
	if err != nil {
		if errors.Is(err, ticketing.ErrProviderRejected) {
			tokenRefreshCounter.WithLabelValues("rejected").Inc()
			m.logger.Error(ctx, "ticketing provider rejected refresh token", err)
			if !m.demote(ctx, organizationID, usedRefreshToken) {
				// Our token was stale, not revoked: someone rotated it first.
				if fresh, ferr := m.loadConnected(ctx, organizationID); ferr == nil {
					if token, ok := m.usable(fresh); ok {
						return token, nil
					}
				}
			}
			return ValidToken{}, fmt.Errorf("%w: %v", ErrTokenExpiredUnrecoverable, err)
		}
		tokenRefreshCounter.WithLabelValues("unavailable").Inc()
		m.logger.Error(ctx, "ticketing token refresh failed", err)
		return ValidToken{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	refreshLifetime := resp.RefreshExpiresIn
	if refreshLifetime <= 0 {
		refreshLifetime = DefaultRefreshTokenLifetime
	}
	var companyID *string
	if resp.CompanyID != "" {
		companyID = &resp.CompanyID
	}

	// The old refresh token is consumed now, so the new pair must be persisted
	// even if the access token turns out to be too short-lived to hand out.
	rotated, err := m.store.RotateIntegrationTokens(ctx, store.RotateIntegrationTokensParams{
		OrganizationID:        organizationID,
		Provider:              store.ProviderTicketing,
		PreviousRefreshToken:  usedRefreshToken,
		AccessToken:           resp.AccessToken,
		RefreshToken:          resp.RefreshToken,
		AccessTokenExpiresAt:  now.Add(resp.ExpiresIn),
		RefreshTokenExpiresAt: now.Add(refreshLifetime),
		ProviderCompanyID:     companyID,
	})
	if err != nil {
		if errors.Is(err, store.ErrTokenRotationConflict) {
			m.logger.Warn(ctx, "ticketing credential rotated concurrently, using stored token")
			if fresh, ferr := m.loadConnected(ctx, organizationID); ferr == nil {
				if token, ok := m.usable(fresh); ok {
					return token, nil
				}
			}
			return ValidToken{}, fmt.Errorf("%w: concurrent rotation left no usable token", ErrProviderUnavailable)
		}
		m.logger.Error(ctx, "failed to persist rotated ticketing tokens", err)
		return ValidToken{}, fmt.Errorf("failed to persist rotated tokens: %w", err)
	}

	tokenRefreshCounter.WithLabelValues("success").Inc()
	m.logger.Info(ctx, "ticketing access token refreshed")

	token, ok := m.usable(rotated)
	if !ok {
		return ValidToken{}, fmt.Errorf("%w: provider issued a token with lifetime %s", ErrProviderUnavailable, resp.ExpiresIn)
	}
	return token, nil
}

// demote clears tokens only if the stored refresh token is still the one we used.
// It reports whether the credential was cleared.
func (m *TokenManager) demote(ctx context.Context, organizationID uuid.UUID, usedRefreshToken string) bool {
	cleared, err := m.store.ClearIntegrationTokensIfMatch(ctx, organizationID, store.ProviderTicketing, usedRefreshToken)
	if err != nil {
		m.logger.Error(ctx, "failed to clear ticketing tokens", err)
		return false
	}
	return cleared
}
