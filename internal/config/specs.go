package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// PersistenceDriver selects the invitation store backing, "in-memory" or "postgres".
	PersistenceDriver string `envconfig:"persistence_driver" default:"in-memory"`

	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	TokenSigningSecret string        `envconfig:"token_signing_secret" default:"seniorhub-dev-signing-secret"`
	InvitationTTL      time.Duration `envconfig:"invitation_ttl" default:"72h"`

	PublicBaseURL  string `envconfig:"public_base_url" default:"http://localhost:8080"`
	WebFallbackURL string `envconfig:"invitation_web_fallback_url"`
	FrontendURL    string `envconfig:"frontend_url" default:"http://localhost:3000"`

	EmailProvider      string        `envconfig:"email_provider" default:"console"`
	EmailFrom          string        `envconfig:"email_from" default:"Senior Hub <noreply@seniorhub.app>"`
	ResendAPIKey       string        `envconfig:"resend_api_key"`
	EmailJobMaxRetries int           `envconfig:"email_job_max_retries" default:"3"`
	EmailJobRetryDelay time.Duration `envconfig:"email_job_retry_delay" default:"1s"`

	InviteRateLimit  int           `envconfig:"invite_rate_limit" default:"10"`
	InviteRateWindow time.Duration `envconfig:"invite_rate_window" default:"60s"`
}
