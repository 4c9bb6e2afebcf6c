package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"ambassador-server/internal/clients/ticketing"
	"ambassador-server/internal/store"
	"context"
	"time"

	"github.com/google/uuid"
)

// CredentialStore is the persistence used by TokenManager
type CredentialStore interface {
	GetIntegrationCredential(ctx context.Context, organizationID uuid.UUID, provider string) (store.IntegrationCredential, error)
	RotateIntegrationTokens(ctx context.Context, params store.RotateIntegrationTokensParams) (store.IntegrationCredential, error)
	ClearIntegrationTokensIfMatch(ctx context.Context, organizationID uuid.UUID, provider, expectedRefreshToken string) (bool, error)
	LockIntegrationRefresh(ctx context.Context, organizationID uuid.UUID, provider string) (unlock func(), err error)
}

// ConnectionStore is the persistence used by ConnectProcessor
type ConnectionStore interface {
	GetIntegrationCredential(ctx context.Context, organizationID uuid.UUID, provider string) (store.IntegrationCredential, error)
	UpsertIntegrationClient(ctx context.Context, params store.UpsertIntegrationClientParams) (store.IntegrationCredential, error)
	SaveIntegrationTokens(ctx context.Context, params store.SaveIntegrationTokensParams) (store.IntegrationCredential, error)
	DisconnectIntegration(ctx context.Context, organizationID uuid.UUID, provider string) error
}

// TokenRefresher performs the refresh_token grant against the provider
type TokenRefresher interface {
	RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (ticketing.TokenResponse, error)
}

// AuthorizationClient drives the authorization-code flow
type AuthorizationClient interface {
	AuthCodeURL(clientID, state string) string
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (ticketing.TokenResponse, error)
}

// RefreshLocker serializes token refreshes for one organization across processes
type RefreshLocker interface {
	Lock(ctx context.Context, organizationID uuid.UUID) (unlock func(), err error)
}

// LeaseClient is a distributed lease primitive, implemented by the redis client
type LeaseClient interface {
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}
