package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// devSigningSecret is only handed out when the deployment explicitly opts in
// outside production. It must never reach a production posture.
const devSigningSecret = "dev-only-insecure-qr-secret"

type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	PGDSN     string `envconfig:"PG_DSN"`
	MongoURI  string `envconfig:"MONGO_URI"`
	RedisAddr string `envconfig:"REDIS_ADDR"`
	RabbitURL string `envconfig:"RABBIT_URL"`

	QRSigningSecret string `envconfig:"QR_SIGNING_SECRET"`
	AllowDevSecret  bool   `envconfig:"QR_ALLOW_DEV_SECRET"`

	// TicketTTL is the age past which an issued ticket is considered expired.
	TicketTTL time.Duration `envconfig:"TICKET_TTL" default:"8760h"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == ""
}

// DevSecretInUse reports whether Load substituted the insecure development
// signing secret, so callers can warn at startup.
func (c *Config) DevSecretInUse() bool {
	return c.QRSigningSecret == devSigningSecret
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.QRSigningSecret == "" {
		if cfg.IsProduction() || !cfg.AllowDevSecret {
			return nil, errors.New("QR_SIGNING_SECRET is not set; refusing to start without a signing secret")
		}
		cfg.QRSigningSecret = devSigningSecret
	}

	return &cfg, nil
}
