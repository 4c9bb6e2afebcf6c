package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Ticketing TicketingConfig
	APNs      APNsConfig
	Dispatch  DispatchConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// TicketingConfig holds the ticketing provider OAuth and API settings
type TicketingConfig struct {
	AuthorizeURL       string
	TokenURL           string
	APIBaseURL         string
	RedirectURI        string
	TrackerURLTemplate string
	StatsCountField    string
	HTTPTimeout        time.Duration
	// AfterConnectURL is where the admin is sent once the OAuth callback completes
	AfterConnectURL string
}

// APNsConfig holds Apple push gateway credentials. Any missing field leaves
// push delivery unconfigured; the server still starts.
type APNsConfig struct {
	KeyID       string
	TeamID      string
	BundleID    string
	PrivateKey  string
	Production  bool
	PushTimeout time.Duration
}

// DispatchConfig holds settings for the cron-triggered endpoints
type DispatchConfig struct {
	CronSecret string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return loadFromEnv()
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Ticketing provider configuration
	if cfg.Ticketing.AuthorizeURL, err = requireEnv("TICKETING_AUTHORIZE_URL"); err != nil {
		return nil, err
	}
	if cfg.Ticketing.TokenURL, err = requireEnv("TICKETING_TOKEN_URL"); err != nil {
		return nil, err
	}
	if cfg.Ticketing.APIBaseURL, err = requireEnv("TICKETING_API_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.Ticketing.RedirectURI, err = requireEnv("TICKETING_REDIRECT_URI"); err != nil {
		return nil, err
	}
	cfg.Ticketing.TrackerURLTemplate = getEnvWithDefault("TICKETING_TRACKER_URL_TEMPLATE", "https://tickets.example.com/t/{code}")
	cfg.Ticketing.StatsCountField = getEnvWithDefault("TICKETING_STATS_COUNT_FIELD", "tickets_count")
	cfg.Ticketing.AfterConnectURL = getEnvWithDefault("TICKETING_AFTER_CONNECT_URL", "")
	if cfg.Ticketing.HTTPTimeout, err = parseDuration("TICKETING_HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}

	// APNs configuration, all optional
	cfg.APNs.KeyID = os.Getenv("APNS_KEY_ID")
	cfg.APNs.TeamID = os.Getenv("APNS_TEAM_ID")
	cfg.APNs.BundleID = os.Getenv("APNS_BUNDLE_ID")
	cfg.APNs.PrivateKey = os.Getenv("APNS_PRIVATE_KEY")
	if path := os.Getenv("APNS_PRIVATE_KEY_PATH"); cfg.APNs.PrivateKey == "" && path != "" {
		key, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read APNS_PRIVATE_KEY_PATH: %w", err)
		}
		cfg.APNs.PrivateKey = string(key)
	}
	if cfg.APNs.Production, err = parseBool("APNS_PRODUCTION", "true"); err != nil {
		return nil, err
	}
	if cfg.APNs.PushTimeout, err = parseDuration("APNS_PUSH_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	// Dispatch configuration
	cfg.Dispatch.CronSecret = os.Getenv("CRON_SECRET")

	// Redis configuration
	if cfg.Redis.Enabled, err = parseBool("REDIS_ENABLED", "false"); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = parseInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = parseInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Kafka configuration, publishing is skipped when no brokers are set
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "ambassador-events")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseBool(key, defaultValue string) (bool, error) {
	v, err := strconv.ParseBool(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
