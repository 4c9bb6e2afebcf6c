// Package apns delivers campaign notifications through the Apple push gateway.
package apns

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=apns

import (
	"ambassador-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize   = 50
	DefaultPushTimeout = 10 * time.Second
)

// ErrNotConfigured means signing credentials are missing or unusable. No push is attempted.
var ErrNotConfigured = errors.New("push notifications are not configured")

// APNSClient is the subset of apns2.Client used for delivery
type APNSClient interface {
	PushWithContext(ctx apns2.Context, n *apns2.Notification) (*apns2.Response, error)
}

// Config holds the credentials required to sign provider tokens
type Config struct {
	KeyID    string
	TeamID   string
	BundleID string
	// PrivateKey is the PEM content of the .p8 signing key
	PrivateKey  string
	Production  bool
	PushTimeout time.Duration
	BatchSize   int
}

// Payload is the user-visible content of a campaign notification
type Payload struct {
	Title      string
	Body       string
	CampaignID string
}

// BatchResult aggregates per-device outcomes of a SendBatch call
type BatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

type Dispatcher struct {
	client      APNSClient
	topic       string
	pushTimeout time.Duration
	batchSize   int
	configErr   error
	logger      *observability.Logger
}

// NewDispatcher builds a dispatcher. Missing or invalid credentials do not fail
// construction; they are reported by Ready and SendBatch.
func NewDispatcher(cfg Config, logger *observability.Logger) *Dispatcher {
	d := &Dispatcher{
		topic:       cfg.BundleID,
		pushTimeout: cfg.PushTimeout,
		batchSize:   cfg.BatchSize,
		logger:      logger,
	}
	d.applyDefaults()

	var missing []string
	if cfg.PrivateKey == "" {
		missing = append(missing, "private key")
	}
	if cfg.KeyID == "" {
		missing = append(missing, "key id")
	}
	if cfg.TeamID == "" {
		missing = append(missing, "team id")
	}
	if cfg.BundleID == "" {
		missing = append(missing, "bundle id")
	}
	if len(missing) > 0 {
		d.configErr = fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
		return d
	}

	authKey, err := token.AuthKeyFromBytes([]byte(cfg.PrivateKey))
	if err != nil {
		d.configErr = fmt.Errorf("%w: failed to parse signing key: %v", ErrNotConfigured, err)
		return d
	}

	// token.Token re-signs the provider JWT before Apple's one hour limit.
	client := apns2.NewTokenClient(&token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	})
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}
	d.client = client
	return d
}

func newDispatcherWithClient(client APNSClient, topic string, pushTimeout time.Duration, batchSize int, logger *observability.Logger) *Dispatcher {
	d := &Dispatcher{
		client:      client,
		topic:       topic,
		pushTimeout: pushTimeout,
		batchSize:   batchSize,
		logger:      logger,
	}
	d.applyDefaults()
	return d
}

func (d *Dispatcher) applyDefaults() {
	if d.pushTimeout <= 0 {
		d.pushTimeout = DefaultPushTimeout
	}
	if d.batchSize <= 0 {
		d.batchSize = DefaultBatchSize
	}
}

// Ready returns ErrNotConfigured (wrapped) when no push can be sent
func (d *Dispatcher) Ready() error {
	return d.configErr
}

// SendBatch delivers one notification per device token. Every device is an
// independent request; a failure on one never affects another. Failures are
// not retried.
func (d *Dispatcher) SendBatch(ctx context.Context, deviceTokens []string, p Payload) (BatchResult, error) {
	if err := d.Ready(); err != nil {
		return BatchResult{}, err
	}
	if len(deviceTokens) == 0 {
		return BatchResult{}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: p.CampaignID},
		observability.Field{Key: "device_count", Value: len(deviceTokens)},
	)

	body, err := json.Marshal(payload.NewPayload().
		AlertTitle(p.Title).
		AlertBody(p.Body).
		Sound("default").
		Badge(1).
		Custom("campaignId", p.CampaignID))
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to marshal push payload: %w", err)
	}

	var (
		sent, failed int64
		mu           sync.Mutex
		invalid      []string
	)

	// Every device is an independent request; at most batchSize are in flight at once.
	var g errgroup.Group
	g.SetLimit(d.batchSize)
	for _, deviceToken := range deviceTokens {
		deviceToken := deviceToken
		g.Go(func() error {
			outcome := d.sendOne(ctx, deviceToken, body)
			switch outcome {
			case outcomeSent:
				atomic.AddInt64(&sent, 1)
			case outcomeInvalidToken:
				atomic.AddInt64(&failed, 1)
				mu.Lock()
				invalid = append(invalid, deviceToken)
				mu.Unlock()
			default:
				atomic.AddInt64(&failed, 1)
			}
			pushDeliveriesCounter.WithLabelValues(string(outcome)).Inc()
			return nil
		})
	}
	// Per-device failures are counted, never returned.
	_ = g.Wait()

	result := BatchResult{
		Sent:          int(sent),
		Failed:        int(failed),
		InvalidTokens: invalid,
	}

	d.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "invalid_tokens", Value: len(result.InvalidTokens)},
	), "push batch completed")

	return result, nil
}

type outcome string

const (
	outcomeSent         outcome = "sent"
	outcomeFailed       outcome = "failed"
	outcomeInvalidToken outcome = "invalid_token"
)

func (d *Dispatcher) sendOne(ctx context.Context, deviceToken string, body []byte) outcome {
	ctx, cancel := context.WithTimeout(ctx, d.pushTimeout)
	defer cancel()

	ctx = observability.WithFields(ctx, observability.Field{Key: "device_token", Value: redactToken(deviceToken)})

	res, err := d.client.PushWithContext(ctx, &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       d.topic,
		Payload:     body,
	})
	if err != nil {
		d.logger.Error(ctx, "push transport failed", err)
		return outcomeFailed
	}
	if res.Sent() {
		return outcomeSent
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: res.StatusCode},
		observability.Field{Key: "reason", Value: res.Reason},
	)
	switch res.Reason {
	case apns2.ReasonBadDeviceToken, apns2.ReasonUnregistered, apns2.ReasonDeviceTokenNotForTopic:
		d.logger.Warn(ctx, "push gateway reported a dead device token")
		return outcomeInvalidToken
	default:
		d.logger.Warn(ctx, "push gateway rejected notification")
		return outcomeFailed
	}
}

func redactToken(t string) string {
	if len(t) <= 8 {
		return t
	}
	return t[:8] + "..."
}
