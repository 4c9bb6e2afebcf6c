package processor

import (
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	stateTTL     = 10 * time.Minute
	statePurpose = "ticketing_oauth"
	stateIssuer  = "ambassador-server"
)

var (
	ErrClientNotConfigured = errors.New("ticketing client credentials are not configured")
	ErrInvalidState        = errors.New("invalid or expired authorization state")
	ErrInvalidClientInput  = errors.New("client id and client secret are required")
	ErrAuthorizationFailed = errors.New("ticketing authorization failed")
)

// ConnectionStatus describes an organization's integration without exposing secrets
type ConnectionStatus struct {
	Configured            bool       `json:"configured"`
	Connected             bool       `json:"connected"`
	ClientID              string     `json:"client_id,omitempty"`
	ProviderCompanyID     *string    `json:"provider_company_id,omitempty"`
	ConnectedAt           *time.Time `json:"connected_at,omitempty"`
	AccessTokenExpiresAt  *time.Time `json:"access_token_expires_at,omitempty"`
	RefreshTokenExpiresAt *time.Time `json:"refresh_token_expires_at,omitempty"`
}

type ConnectProcessor struct {
	store       ConnectionStore
	client      AuthorizationClient
	stateSecret []byte
	now         func() time.Time
	logger      *observability.Logger
}

func NewConnectProcessor(store ConnectionStore, client AuthorizationClient, stateSecret string, logger *observability.Logger) *ConnectProcessor {
	return &ConnectProcessor{
		store:       store,
		client:      client,
		stateSecret: []byte(stateSecret),
		now:         time.Now,
		logger:      logger,
	}
}

func statusFromCredential(cred store.IntegrationCredential) ConnectionStatus {
	status := ConnectionStatus{
		Configured: cred.ClientID != "",
		Connected:  cred.IsConnected(),
		ClientID:   cred.ClientID,
	}
	if status.Connected {
		status.ProviderCompanyID = cred.ProviderCompanyID
		status.ConnectedAt = cred.ConnectedAt
		status.AccessTokenExpiresAt = cred.AccessTokenExpiresAt
		status.RefreshTokenExpiresAt = cred.RefreshTokenExpiresAt
	}
	return status
}

// SaveClientCredentials stores the OAuth client an admin registered with the provider
func (p *ConnectProcessor) SaveClientCredentials(ctx context.Context, organizationID uuid.UUID, clientID, clientSecret string) (ConnectionStatus, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	if clientID == "" || clientSecret == "" {
		return ConnectionStatus{}, ErrInvalidClientInput
	}

	cred, err := p.store.UpsertIntegrationClient(ctx, store.UpsertIntegrationClientParams{
		OrganizationID: organizationID,
		Provider:       store.ProviderTicketing,
		ClientID:       clientID,
		ClientSecret:   clientSecret,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save ticketing client credentials", err)
		return ConnectionStatus{}, err
	}

	p.logger.Info(ctx, "ticketing client credentials saved")
	return statusFromCredential(cred), nil
}

// AuthorizationURL returns the provider consent URL the admin is redirected to
func (p *ConnectProcessor) AuthorizationURL(ctx context.Context, organizationID uuid.UUID) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	cred, err := p.store.GetIntegrationCredential(ctx, organizationID, store.ProviderTicketing)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrClientNotConfigured
		}
		p.logger.Error(ctx, "failed to load ticketing credential", err)
		return "", err
	}

	state, err := p.signState(organizationID)
	if err != nil {
		p.logger.Error(ctx, "failed to sign authorization state", err)
		return "", err
	}

	return p.client.AuthCodeURL(cred.ClientID, state), nil
}

// CompleteAuthorization handles the provider redirect: verifies state, exchanges the
// code and marks the integration connected. It returns the organization that connected.
func (p *ConnectProcessor) CompleteAuthorization(ctx context.Context, state, code string) (uuid.UUID, error) {
	organizationID, err := p.verifyState(state)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("rejected ticketing callback: %v", err))
		return uuid.Nil, ErrInvalidState
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	if code == "" {
		return uuid.Nil, ErrAuthorizationFailed
	}

	cred, err := p.store.GetIntegrationCredential(ctx, organizationID, store.ProviderTicketing)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return uuid.Nil, ErrClientNotConfigured
		}
		p.logger.Error(ctx, "failed to load ticketing credential", err)
		return uuid.Nil, err
	}

	now := p.now()
	resp, err := p.client.ExchangeCode(ctx, cred.ClientID, cred.ClientSecret, code)
	if err != nil {
		p.logger.Error(ctx, "ticketing code exchange failed", err)
		return uuid.Nil, fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		// Without a refresh token the connection would look healthy until the first refresh.
		p.logger.Warn(ctx, "ticketing code exchange returned an incomplete token pair")
		return uuid.Nil, fmt.Errorf("%w: provider did not issue both an access and a refresh token", ErrAuthorizationFailed)
	}

	refreshLifetime := resp.RefreshExpiresIn
	if refreshLifetime <= 0 {
		refreshLifetime = DefaultRefreshTokenLifetime
	}
	var companyID *string
	if resp.CompanyID != "" {
		companyID = &resp.CompanyID
	}

	_, err = p.store.SaveIntegrationTokens(ctx, store.SaveIntegrationTokensParams{
		OrganizationID:        organizationID,
		Provider:              store.ProviderTicketing,
		AccessToken:           resp.AccessToken,
		RefreshToken:          resp.RefreshToken,
		AccessTokenExpiresAt:  now.Add(resp.ExpiresIn),
		RefreshTokenExpiresAt: now.Add(refreshLifetime),
		ProviderCompanyID:     companyID,
		ConnectedAt:           now,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist ticketing tokens", err)
		return uuid.Nil, err
	}

	p.logger.Info(ctx, "ticketing integration connected")
	return organizationID, nil
}

// Disconnect tears down the connection; the client credentials stay configured
func (p *ConnectProcessor) Disconnect(ctx context.Context, organizationID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	if err := p.store.DisconnectIntegration(ctx, organizationID, store.ProviderTicketing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotConfigured
		}
		p.logger.Error(ctx, "failed to disconnect ticketing integration", err)
		return err
	}

	p.logger.Info(ctx, "ticketing integration disconnected")
	return nil
}

func (p *ConnectProcessor) Status(ctx context.Context, organizationID uuid.UUID) (ConnectionStatus, error) {
	cred, err := p.store.GetIntegrationCredential(ctx, organizationID, store.ProviderTicketing)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ConnectionStatus{}, nil
		}
		p.logger.Error(ctx, "failed to load ticketing credential", err)
		return ConnectionStatus{}, err
	}
	return statusFromCredential(cred), nil
}

func (p *ConnectProcessor) signState(organizationID uuid.UUID) (string, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"organization_id": organizationID.String(),
		"purpose":         statePurpose,
		"iss":             stateIssuer,
		"iat":             now.Unix(),
		"exp":             now.Add(stateTTL).Unix(),
		"nonce":           uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.stateSecret)
}

func (p *ConnectProcessor) verifyState(state string) (uuid.UUID, error) {
	if state == "" {
		return uuid.Nil, errors.New("missing state")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.stateSecret, nil
	}, jwt.WithTimeFunc(p.now), jwt.WithIssuer(stateIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}

	if purpose, _ := claims["purpose"].(string); purpose != statePurpose {
		return uuid.Nil, errors.New("state issued for another purpose")
	}
	rawOrg, _ := claims["organization_id"].(string)
	organizationID, err := uuid.Parse(rawOrg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("state has invalid organization id: %w", err)
	}
	return organizationID, nil
}
