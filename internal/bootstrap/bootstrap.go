package bootstrap

import (
	"ambassador-server/internal/config"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	"context"
	"fmt"
	"strings"

	ambassadorHandler "ambassador-server/internal/ambassador/handler"
	ambassadorProcessor "ambassador-server/internal/ambassador/processor"
	authHandler "ambassador-server/internal/auth/handler"
	authProcessor "ambassador-server/internal/auth/processor"
	kafkaClient "ambassador-server/internal/clients/kafka"
	redisClient "ambassador-server/internal/clients/redis"
	"ambassador-server/internal/clients/ticketing"
	dispatchHandler "ambassador-server/internal/dispatch/handler"
	dispatchProcessor "ambassador-server/internal/dispatch/processor"
	"ambassador-server/internal/events"
	"ambassador-server/internal/push/apns"
	ticketingHandler "ambassador-server/internal/ticketing/handler"
	ticketingProcessor "ambassador-server/internal/ticketing/processor"
	trackerProcessor "ambassador-server/internal/tracker/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Processors, shared by the HTTP server and the CLI
	TokenManager      *ticketingProcessor.TokenManager
	TrackerProcessor  *trackerProcessor.TrackerProcessor
	DispatchProcessor *dispatchProcessor.DispatchProcessor
	AuthProcessor     *authProcessor.AuthProcessor

	// Handlers
	AuthHandler       authHandler.Handler
	TicketingHandler  ticketingHandler.Handler
	AmbassadorHandler ambassadorHandler.Handler
	DispatchHandler   dispatchHandler.Handler

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional; without it token refreshes are serialized by the store alone
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	var locker ticketingProcessor.RefreshLocker
	if deps.RedisClient != nil {
		locker = ticketingProcessor.NewLeaseRefreshLocker(deps.RedisClient, logger)
	}

	// Kafka is optional; without brokers no domain events are published
	var publisher *events.Publisher
	if cfg.Kafka.Brokers != "" {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: strings.Split(cfg.Kafka.Brokers, ","),
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = events.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, domain events will not be published")
	}

	// Initialize ticketing provider client
	ticketingClient := ticketing.NewClient(ticketing.Config{
		AuthorizeURL:    cfg.Ticketing.AuthorizeURL,
		TokenURL:        cfg.Ticketing.TokenURL,
		APIBaseURL:      cfg.Ticketing.APIBaseURL,
		RedirectURI:     cfg.Ticketing.RedirectURI,
		StatsCountField: cfg.Ticketing.StatsCountField,
		Timeout:         cfg.Ticketing.HTTPTimeout,
	}, logger)

	// Initialize ticketing token manager and connect flow
	deps.TokenManager = ticketingProcessor.NewTokenManager(&deps.Store, ticketingClient, locker, logger)
	connectProc := ticketingProcessor.NewConnectProcessor(&deps.Store, ticketingClient, cfg.Auth.JWTSecret, logger)

	// Initialize tracker processor
	trackerProc := trackerProcessor.New(&deps.Store, deps.TokenManager, ticketingClient, cfg.Ticketing.TrackerURLTemplate, logger)
	deps.TrackerProcessor = &trackerProc
	deps.TicketingHandler = ticketingHandler.New(connectProc, deps.TrackerProcessor, cfg.Ticketing.AfterConnectURL, logger)

	// Initialize ambassador processor and handler
	var trackerEvents ambassadorProcessor.EventPublisher
	if publisher != nil {
		trackerEvents = publisher
	}
	ambassadorProc := ambassadorProcessor.New(&deps.Store, deps.TrackerProcessor, trackerEvents, logger)
	deps.AmbassadorHandler = ambassadorHandler.New(&ambassadorProc, logger)

	// Initialize push dispatcher; missing APNs credentials surface on the first dispatch
	pushDispatcher := apns.NewDispatcher(apns.Config{
		KeyID:       cfg.APNs.KeyID,
		TeamID:      cfg.APNs.TeamID,
		BundleID:    cfg.APNs.BundleID,
		PrivateKey:  cfg.APNs.PrivateKey,
		Production:  cfg.APNs.Production,
		PushTimeout: cfg.APNs.PushTimeout,
	}, logger)
	if err := pushDispatcher.Ready(); err != nil {
		logger.Warn(ctx, fmt.Sprintf("push delivery is not configured: %v", err))
	}

	// Initialize campaign dispatch processor and handler
	var dispatchEvents dispatchProcessor.EventPublisher
	if publisher != nil {
		dispatchEvents = publisher
	}
	dispatchProc := dispatchProcessor.New(&deps.Store, pushDispatcher, dispatchEvents, logger)
	deps.DispatchProcessor = &dispatchProc
	if cfg.Dispatch.CronSecret == "" {
		logger.Warn(ctx, "CRON_SECRET not set, dispatch trigger endpoints are open")
	}
	deps.DispatchHandler = dispatchHandler.New(deps.DispatchProcessor, deps.TrackerProcessor, cfg.Dispatch.CronSecret, logger)

	// Initialize admin auth
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthProcessor = &authProc
	deps.AuthHandler = authHandler.New(deps.AuthProcessor, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
