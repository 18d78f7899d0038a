package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, secrets, collaborator URLs)
// - default: values common across all environments (timeouts, backends for local runs)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Booking    BookingConfig
	Identity   IdentityConfig
	Ledger     LedgerConfig
	Registry   RegistryConfig
	SlotLedger SlotLedgerConfig
	Redis      RedisConfig
	Fallback   FallbackConfig
	Award      AwardConfig
	Review     ReviewConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	// flat | hourly
	Pricing string `envconfig:"BOOKING_PRICING" default:"flat"`
	// after_payment | hold
	ReservePolicy string `envconfig:"BOOKING_RESERVE_POLICY" default:"after_payment"`
	// Receives every booking payment when set; otherwise the skill owner is paid.
	EscrowAddress string `envconfig:"BOOKING_ESCROW_ADDRESS"`
	ListingFee    string `envconfig:"LISTING_FEE" default:"0"`
}

type IdentityConfig struct {
	// opaque | algorand
	Format string `envconfig:"IDENTITY_FORMAT" default:"opaque"`
}

type LedgerConfig struct {
	// fake | http
	Backend string        `envconfig:"LEDGER_BACKEND" default:"fake"`
	URL     string        `envconfig:"LEDGER_URL"`
	Token   string        `envconfig:"LEDGER_TOKEN"`
	Timeout time.Duration `envconfig:"LEDGER_TIMEOUT" default:"15s"`
}

type RegistryConfig struct {
	// memory | http
	Backend string        `envconfig:"REGISTRY_BACKEND" default:"memory"`
	URL     string        `envconfig:"REGISTRY_URL"`
	Timeout time.Duration `envconfig:"REGISTRY_TIMEOUT" default:"10s"`
}

type SlotLedgerConfig struct {
	// memory | redis
	Backend string `envconfig:"SLOT_LEDGER_BACKEND" default:"memory"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"skillswap"`
}

type FallbackConfig struct {
	// hex-encoded 32-byte ed25519 seed; empty disables the key-based path
	SignerSeed string `envconfig:"FALLBACK_SIGNER_SEED"`
}

type AwardConfig struct {
	RetrySchedule string `envconfig:"AWARD_RETRY_SCHEDULE" default:"@every 1m"`
	// cron spec for dropping expired idempotency keys
	SweepSchedule string `envconfig:"IDEMPOTENCY_SWEEP_SCHEDULE" default:"@every 10m"`
}

type ReviewConfig struct {
	// Only students with a completed session of the skill may review it.
	RequireCompletedSession bool `envconfig:"REVIEW_REQUIRE_COMPLETED_SESSION" default:"false"`
}

func (c BookingConfig) ListingFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.ListingFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid LISTING_FEE %q: %w", c.ListingFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("LISTING_FEE cannot be negative: %s", c.ListingFee)
	}
	return fee, nil
}

func (c SlotLedgerConfig) UsesRedis() bool {
	return c.Backend == "redis"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Booking.Pricing {
	case "flat", "hourly":
	default:
		return fmt.Errorf("BOOKING_PRICING must be flat or hourly, got %q", c.Booking.Pricing)
	}
	switch c.Booking.ReservePolicy {
	case "after_payment", "hold":
	default:
		return fmt.Errorf("BOOKING_RESERVE_POLICY must be after_payment or hold, got %q", c.Booking.ReservePolicy)
	}
	fee, err := c.Booking.ListingFeeAmount()
	if err != nil {
		return err
	}
	if fee.IsPositive() && c.Booking.EscrowAddress == "" {
		return fmt.Errorf("BOOKING_ESCROW_ADDRESS is required when LISTING_FEE is positive")
	}
	if c.Ledger.Backend == "http" && c.Ledger.URL == "" {
		return fmt.Errorf("LEDGER_URL is required when LEDGER_BACKEND=http")
	}
	if c.Registry.Backend == "http" && c.Registry.URL == "" {
		return fmt.Errorf("REGISTRY_URL is required when REGISTRY_BACKEND=http")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			Pricing:       "flat",
			ReservePolicy: "after_payment",
			ListingFee:    "0",
		},
		Identity:   IdentityConfig{Format: "opaque"},
		Ledger:     LedgerConfig{Backend: "fake", Timeout: time.Second},
		Registry:   RegistryConfig{Backend: "memory", Timeout: time.Second},
		SlotLedger: SlotLedgerConfig{Backend: "memory"},
		Redis:      RedisConfig{Addr: "localhost:16379", KeyPrefix: "skillswap-test"},
		Award:      AwardConfig{RetrySchedule: "@every 1m", SweepSchedule: "@every 10m"},
	}
}
