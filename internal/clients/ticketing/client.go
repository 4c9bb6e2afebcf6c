package ticketing

import (
	"ambassador-server/internal/observability"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// TrackerTypeAmbassador is the tracker type created for ambassador referral links
const TrackerTypeAmbassador = "ambassador"

var (
	// ErrProviderRejected is returned for 4xx responses and OAuth error replies.
	ErrProviderRejected = errors.New("ticketing provider rejected the request")
	// ErrProviderUnavailable is returned for transport failures and 5xx responses.
	ErrProviderUnavailable = errors.New("ticketing provider unavailable")
)

// Config holds provider endpoints and client behaviour
type Config struct {
	AuthorizeURL    string
	TokenURL        string
	APIBaseURL      string
	RedirectURI     string
	StatsCountField string
	Timeout         time.Duration
}

// TokenResponse is the normalized result of a token endpoint call
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime stated by the provider
	ExpiresIn time.Duration
	// RefreshExpiresIn is zero when the provider does not state a refresh token lifetime
	RefreshExpiresIn time.Duration
	CompanyID        string
}

// APICredentials authenticates a provider API call
type APICredentials struct {
	AccessToken string
	CompanyID   string
}

// CreateTrackerParams describes a tracker to create
type CreateTrackerParams struct {
	ShopID string
	Name   string
	Type   string
}

// Tracker is a provider-side tracking object
type Tracker struct {
	GUID string
	Code string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(cfg Config, logger *observability.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if cfg.StatsCountField == "" {
		cfg.StatsCountField = "tickets_count"
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) oauthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  c.cfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.cfg.AuthorizeURL,
			TokenURL:  c.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthCodeURL builds the provider authorization redirect for an organization's client
func (c *Client) AuthCodeURL(clientID, state string) string {
	return c.oauthConfig(clientID, "").AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for a token pair
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (TokenResponse, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauthConfig(clientID, clientSecret).Exchange(ctx, code)
	if err != nil {
		c.logger.Error(ctx, "failed to exchange authorization code", err)
		return TokenResponse{}, classifyTokenError(err)
	}
	return normalizeToken(tok), nil
}

// RefreshToken performs a refresh_token grant. The refresh token is consumed by the provider.
func (c *Client) RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (TokenResponse, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	src := c.oauthConfig(clientID, clientSecret).TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		c.logger.Error(ctx, "failed to refresh access token", err)
		return TokenResponse{}, classifyTokenError(err)
	}
	return normalizeToken(tok), nil
}

func classifyTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		status := retrieveErr.Response.StatusCode
		if status >= 400 && status < 500 {
			return fmt.Errorf("%w: status %d: %s", ErrProviderRejected, status, retrieveErr.ErrorCode)
		}
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, status)
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}

func normalizeToken(tok *oauth2.Token) TokenResponse {
	resp := TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if secs, ok := extraSeconds(tok.Extra("expires_in")); ok {
		resp.ExpiresIn = time.Duration(secs) * time.Second
	} else if !tok.Expiry.IsZero() {
		resp.ExpiresIn = time.Until(tok.Expiry)
	}
	if secs, ok := extraSeconds(tok.Extra("refresh_token_expires_in")); ok {
		resp.RefreshExpiresIn = time.Duration(secs) * time.Second
	}
	switch v := tok.Extra("company_id").(type) {
	case string:
		resp.CompanyID = v
	case float64:
		resp.CompanyID = strconv.FormatInt(int64(v), 10)
	case json.Number:
		resp.CompanyID = v.String()
	}
	return resp
}

func extraSeconds(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), n > 0
	case int64:
		return n, n > 0
	case json.Number:
		i, err := n.Int64()
		return i, err == nil && i > 0
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil && i > 0
	}
	return 0, false
}

// CreateTracker creates a tracking object for a shop
func (c *Client) CreateTracker(ctx context.Context, creds APICredentials, params CreateTrackerParams) (Tracker, error) {
	body, err := json.Marshal(map[string]string{
		"shop_id": params.ShopID,
		"name":    params.Name,
		"type":    params.Type,
	})
	if err != nil {
		return Tracker{}, fmt.Errorf("failed to marshal tracker request: %w", err)
	}

	respBody, err := c.do(ctx, creds, http.MethodPost, "/tracker", body)
	if err != nil {
		return Tracker{}, err
	}

	result := gjson.ParseBytes(respBody)
	if data := result.Get("data"); data.IsObject() {
		result = data
	}
	tracker := Tracker{
		GUID: result.Get("guid").String(),
		Code: result.Get("code").String(),
	}
	if tracker.GUID == "" || tracker.Code == "" {
		return Tracker{}, fmt.Errorf("%w: tracker response missing guid or code", ErrProviderUnavailable)
	}
	return tracker, nil
}

// FetchTrackerStats returns ticket counts keyed by tracker guid for every tracker of the company
func (c *Client) FetchTrackerStats(ctx context.Context, creds APICredentials) (map[string]int, error) {
	respBody, err := c.do(ctx, creds, http.MethodGet, "/statistics/tracker", nil)
	if err != nil {
		return nil, err
	}

	result := gjson.ParseBytes(respBody)
	if !result.IsArray() {
		result = result.Get("data")
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: unexpected statistics response shape", ErrProviderUnavailable)
	}

	stats := make(map[string]int)
	result.ForEach(func(_, item gjson.Result) bool {
		guid := item.Get("guid").String()
		if guid == "" {
			return true
		}
		stats[guid] = int(item.Get(c.cfg.StatsCountField).Int())
		return true
	})
	return stats, nil
}

func (c *Client) do(ctx context.Context, creds APICredentials, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	url := strings.TrimRight(c.cfg.APIBaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Accept", "application/json")
	if creds.CompanyID != "" {
		req.Header.Set("Company", creds.CompanyID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "ticketing request failed", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "status_code", Value: resp.StatusCode},
			observability.Field{Key: "provider_path", Value: path},
		)
		c.logger.Warn(ctx, "ticketing provider returned non-success status")
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: %s %s returned %d", ErrProviderRejected, method, path, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrProviderUnavailable, method, path, resp.StatusCode)
	}
	return respBody, nil
}
