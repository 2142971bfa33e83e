package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, rates, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Auth    AuthConfig
	Tickets TicketConfig
	Pricing PricingConfig
	Payment PaymentConfig
	SMTP    SMTPConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AuthConfig covers the consumed identity tokens: this service validates
// bearer tokens issued by the identity provider, it never issues them itself.
type AuthConfig struct {
	Secret string `envconfig:"AUTH_JWT_SECRET" required:"true"`
}

// TicketConfig holds the credential-signing material for redemption tokens.
// Deliberately a separate secret from AuthConfig.
type TicketConfig struct {
	SigningSecret string `envconfig:"TICKET_SIGNING_SECRET" required:"true"`
}

type PricingConfig struct {
	// Service fee on the pre-discount subtotal, in basis points (1500 = 15%).
	ServiceFeeBasisPoints int32 `envconfig:"PRICING_SERVICE_FEE_BP" default:"1500"`
}

type PaymentConfig struct {
	CheckoutBaseURL string `envconfig:"PAYMENT_CHECKOUT_BASE_URL" default:"https://mock-mercadopago.com/checkout"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"Ticketera <no-reply@ticketera.com>"`
}

type WorkerConfig struct {
	DispatchInterval time.Duration `envconfig:"WORKER_DISPATCH_INTERVAL" default:"5s"`
	DispatchBatch    int32         `envconfig:"WORKER_DISPATCH_BATCH" default:"20"`
	MaxAttempts      int32         `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
	SweepInterval    time.Duration `envconfig:"WORKER_SWEEP_INTERVAL" default:"1h"`
	PendingOrderTTL  time.Duration `envconfig:"WORKER_PENDING_ORDER_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth:    AuthConfig{Secret: "test-auth-secret"},
		Tickets: TicketConfig{SigningSecret: "test-ticket-secret"},
		Pricing: PricingConfig{ServiceFeeBasisPoints: 1500},
		Payment: PaymentConfig{CheckoutBaseURL: "https://mock-mercadopago.com/checkout"},
		Worker: WorkerConfig{
			DispatchInterval: 5 * time.Second,
			DispatchBatch:    20,
			MaxAttempts:      5,
			SweepInterval:    time.Hour,
			PendingOrderTTL:  24 * time.Hour,
		},
	}
}
