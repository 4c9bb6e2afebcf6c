package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrTokenRotationConflict is returned when the stored refresh token no longer
// matches the one a rotation was computed from.
var ErrTokenRotationConflict = errors.New("refresh token was rotated concurrently")

const integrationCredentialColumns = `
id, organization_id, provider, client_id, client_secret, access_token, refresh_token,
access_token_expires_at, refresh_token_expires_at, provider_company_id, connected_at,
created_at, updated_at`

const sqlGetIntegrationCredential = `
SELECT ` + integrationCredentialColumns + `
FROM integration_credentials
WHERE organization_id = $1 AND provider = $2
`

// GetIntegrationCredential retrieves an organization's credential for a provider
func (s *Store) GetIntegrationCredential(ctx context.Context, organizationID uuid.UUID, provider string) (IntegrationCredential, error) {
	var cred IntegrationCredential
	err := s.db.GetContext(ctx, &cred, sqlGetIntegrationCredential, organizationID, provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IntegrationCredential{}, ErrNotFound
		}
		return IntegrationCredential{}, fmt.Errorf("failed to get integration credential: %w", err)
	}
	return cred, nil
}

// UpsertIntegrationClientParams represents the admin-entered OAuth client configuration
type UpsertIntegrationClientParams struct {
	OrganizationID uuid.UUID
	Provider       string
	ClientID       string
	ClientSecret   string
}

// Changing the client id invalidates any tokens issued to the previous client.
const sqlUpsertIntegrationClient = `
INSERT INTO integration_credentials (organization_id, provider, client_id, client_secret)
VALUES ($1, $2, $3, $4)
ON CONFLICT (organization_id, provider) DO UPDATE SET
    client_id = EXCLUDED.client_id,
    client_secret = EXCLUDED.client_secret,
    access_token = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.access_token END,
    refresh_token = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.refresh_token END,
    access_token_expires_at = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.access_token_expires_at END,
    refresh_token_expires_at = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.refresh_token_expires_at END,
    provider_company_id = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.provider_company_id END,
    connected_at = CASE WHEN integration_credentials.client_id = EXCLUDED.client_id THEN integration_credentials.connected_at END,
    updated_at = NOW()
RETURNING ` + integrationCredentialColumns

// UpsertIntegrationClient stores the OAuth client id and secret for an organization
func (s *Store) UpsertIntegrationClient(ctx context.Context, params UpsertIntegrationClientParams) (IntegrationCredential, error) {
	var cred IntegrationCredential
	err := s.db.GetContext(ctx, &cred, sqlUpsertIntegrationClient,
		params.OrganizationID,
		params.Provider,
		params.ClientID,
		params.ClientSecret)
	if err != nil {
		return IntegrationCredential{}, fmt.Errorf("failed to upsert integration client: %w", err)
	}
	return cred, nil
}

// SaveIntegrationTokensParams represents the result of a completed authorization-code exchange
type SaveIntegrationTokensParams struct {
	OrganizationID        uuid.UUID
	Provider              string
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	ProviderCompanyID     *string
	ConnectedAt           time.Time
}

const sqlSaveIntegrationTokens = `
UPDATE integration_credentials
SET access_token = $3,
    refresh_token = $4,
    access_token_expires_at = $5,
    refresh_token_expires_at = $6,
    provider_company_id = $7,
    connected_at = $8,
    updated_at = NOW()
WHERE organization_id = $1 AND provider = $2
RETURNING ` + integrationCredentialColumns

// SaveIntegrationTokens marks the credential connected with a freshly issued token pair
func (s *Store) SaveIntegrationTokens(ctx context.Context, params SaveIntegrationTokensParams) (IntegrationCredential, error) {
	var cred IntegrationCredential
	err := s.db.GetContext(ctx, &cred, sqlSaveIntegrationTokens,
		params.OrganizationID,
		params.Provider,
		params.AccessToken,
		params.RefreshToken,
		params.AccessTokenExpiresAt,
		params.RefreshTokenExpiresAt,
		params.ProviderCompanyID,
		params.ConnectedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IntegrationCredential{}, ErrNotFound
		}
		return IntegrationCredential{}, fmt.Errorf("failed to save integration tokens: %w", err)
	}
	return cred, nil
}

// RotateIntegrationTokensParams represents a refresh-token grant result
type RotateIntegrationTokensParams struct {
	OrganizationID        uuid.UUID
	Provider              string
	PreviousRefreshToken  string
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	ProviderCompanyID     *string
}

const sqlRotateIntegrationTokens = `
UPDATE integration_credentials
SET access_token = $4,
    refresh_token = $5,
    access_token_expires_at = $6,
    refresh_token_expires_at = $7,
    provider_company_id = COALESCE($8, provider_company_id),
    updated_at = NOW()
WHERE organization_id = $1 AND provider = $2 AND refresh_token = $3
RETURNING ` + integrationCredentialColumns

// RotateIntegrationTokens replaces the token pair only if the stored refresh
// token is still the one the rotation was computed from.
func (s *Store) RotateIntegrationTokens(ctx context.Context, params RotateIntegrationTokensParams) (IntegrationCredential, error) {
	var cred IntegrationCredential
	err := s.db.GetContext(ctx, &cred, sqlRotateIntegrationTokens,
		params.OrganizationID,
		params.Provider,
		params.PreviousRefreshToken,
		params.AccessToken,
		params.RefreshToken,
		params.AccessTokenExpiresAt,
		params.RefreshTokenExpiresAt,
		params.ProviderCompanyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IntegrationCredential{}, ErrTokenRotationConflict
		}
		return IntegrationCredential{}, fmt.Errorf("failed to rotate integration tokens: %w", err)
	}
	return cred, nil
}

const sqlClearIntegrationTokensIfMatch = `
UPDATE integration_credentials
SET access_token = NULL,
    refresh_token = NULL,
    access_token_expires_at = NULL,
    refresh_token_expires_at = NULL,
    connected_at = NULL,
    updated_at = NOW()
WHERE organization_id = $1 AND provider = $2 AND refresh_token = $3
`

// ClearIntegrationTokensIfMatch tears down the connection only when the stored
// refresh token equals expectedRefreshToken. It reports whether a row changed.
func (s *Store) ClearIntegrationTokensIfMatch(ctx context.Context, organizationID uuid.UUID, provider, expectedRefreshToken string) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlClearIntegrationTokensIfMatch, organizationID, provider, expectedRefreshToken)
	if err != nil {
		return false, fmt.Errorf("failed to clear integration tokens: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}

const sqlDisconnectIntegration = `
UPDATE integration_credentials
SET access_token = NULL,
    refresh_token = NULL,
    access_token_expires_at = NULL,
    refresh_token_expires_at = NULL,
    provider_company_id = NULL,
    connected_at = NULL,
    updated_at = NOW()
WHERE organization_id = $1 AND provider = $2
`

// DisconnectIntegration clears all tokens for an organization's provider credential
func (s *Store) DisconnectIntegration(ctx context.Context, organizationID uuid.UUID, provider string) error {
	res, err := s.db.ExecContext(ctx, sqlDisconnectIntegration, organizationID, provider)
	if err != nil {
		return fmt.Errorf("failed to disconnect integration: %w", err)
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

const sqlListConnectedOrganizations = `
SELECT organization_id
FROM integration_credentials
WHERE provider = $1 AND connected_at IS NOT NULL AND refresh_token IS NOT NULL
ORDER BY organization_id
`

// ListConnectedOrganizations returns every organization with a live connection to provider
func (s *Store) ListConnectedOrganizations(ctx context.Context, provider string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlListConnectedOrganizations, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected organizations: %w", err)
	}
	return ids, nil
}

// Waiters give up instead of queueing behind a refresh that is stuck on the provider.
const sqlSetIntegrationRefreshLockTimeout = `SET LOCAL lock_timeout = '20s'`

const sqlLockIntegrationRefresh = `SELECT pg_advisory_xact_lock(hashtext($1))`

// LockIntegrationRefresh blocks until this caller holds the refresh lock for an
// organization's provider credential. The lock is a transaction-scoped advisory
// lock, so it is shared by every process using the database and is released by
// unlock or when the connection dies.
func (s *Store) LockIntegrationRefresh(ctx context.Context, organizationID uuid.UUID, provider string) (func(), error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin refresh lock transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlSetIntegrationRefreshLockTimeout); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to set refresh lock timeout: %w", err)
	}
	key := fmt.Sprintf("integration_refresh:%s:%s", provider, organizationID)
	if _, err := tx.ExecContext(ctx, sqlLockIntegrationRefresh, key); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to acquire integration refresh lock: %w", err)
	}
	return func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to release integration refresh lock", err)
		}
	}, nil
}
