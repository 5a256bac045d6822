// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// JWTSecret is the HMAC signing secret for session tokens. Required.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// JWTIssuer is the iss claim (e.g. "jendo-auth").
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// JWTAudience is the aud claim (e.g. "jendo-api").
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`
	// JWTTTL is the session token lifetime (e.g. "24h").
	JWTTTL string `mapstructure:"JWT_TTL"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// OTPTTL is the passcode challenge lifetime (e.g. "10m").
	OTPTTL string `mapstructure:"OTP_TTL"`
	// MailerAPIKey is the API key for the transactional mail provider.
	// When empty, OTP delivery fails and is logged; requests still succeed.
	MailerAPIKey string `mapstructure:"MAILER_API_KEY"`
	// MailerBaseURL is the mail provider endpoint.
	MailerBaseURL string `mapstructure:"MAILER_BASE_URL"`
	// MailerSender is the From address for OTP mail.
	MailerSender string `mapstructure:"MAILER_SENDER"`
	// KafkaBrokers is a comma-separated list of Kafka broker addresses.
	// Empty disables notification event publishing.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// KafkaNotifyTopic is the topic notification events are published to.
	KafkaNotifyTopic string `mapstructure:"KAFKA_NOTIFY_TOPIC"`
	// OTLPEndpoint is the OTLP HTTP endpoint for traces; empty disables tracing.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// SeedAdminEmail and SeedAdminPassword are consumed by cmd/seed only.
	SeedAdminEmail    string `mapstructure:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string `mapstructure:"SEED_ADMIN_PASSWORD"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "jendo-auth")
	v.SetDefault("JWT_AUDIENCE", "jendo-api")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("OTP_TTL", "10m")
	v.SetDefault("MAILER_API_KEY", "")
	v.SetDefault("MAILER_BASE_URL", "")
	v.SetDefault("MAILER_SENDER", "no-reply@jendo.health")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_NOTIFY_TOPIC", "jendo-notifications")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("SEED_ADMIN_EMAIL", "")
	v.SetDefault("SEED_ADMIN_PASSWORD", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}
	if cfg.Env == "production" && len(cfg.JWTSecret) < 32 {
		return nil, errors.New("config: JWT_SECRET must be at least 32 bytes when APP_ENV=production")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	return &cfg, nil
}

// SessionTTL parses JWTTTL as a time.Duration. Returns 24h if unset or invalid.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// PasscodeTTL parses OTPTTL as a time.Duration. Returns 10m if unset or invalid.
func (c *Config) PasscodeTTL() time.Duration {
	d, err := time.ParseDuration(c.OTPTTL)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// An empty list means notification event publishing is disabled.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
