package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Storage   StorageConfig   `yaml:"storage"`
	Notify    NotifyConfig    `yaml:"notify"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Device-Info"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy makes the rate limiter and signature capture honour X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT verification settings. Tokens are issued by the
// platform's identity service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"riseflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SMTPConfig holds outbound email settings. An empty Host disables email
// delivery; in-app notifications are still written.
type SMTPConfig struct {
	Host       string        `yaml:"host"        env:"SMTP_HOST"`
	Port       int           `yaml:"port"        env:"SMTP_PORT"        env-default:"587"`
	Username   string        `yaml:"username"    env:"SMTP_USERNAME"`
	Password   string        `yaml:"password"    env:"SMTP_PASSWORD"`
	From       string        `yaml:"from"        env:"SMTP_FROM"        env-default:"noreply@riseflow.io"`
	TLS        string        `yaml:"tls"         env:"SMTP_TLS"         env-default:"opportunistic"`
	MaxRetries uint64        `yaml:"max_retries" env:"SMTP_MAX_RETRIES" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"SMTP_RETRY_DELAY" env-default:"1s"`
}

// Enabled reports whether email delivery is configured.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// StorageConfig holds S3-compatible object storage settings for signed copies.
type StorageConfig struct {
	Enabled   bool   `yaml:"enabled"    env:"STORAGE_ENABLED"    env-default:"false"`
	Endpoint  string `yaml:"endpoint"   env:"STORAGE_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"STORAGE_BUCKET"     env-default:"agreements"`
	UseSSL    bool   `yaml:"use_ssl"    env:"STORAGE_USE_SSL"    env-default:"true"`
}

// NotifyConfig holds notification relay settings.
type NotifyConfig struct {
	FrontendURL     string        `yaml:"frontend_url"     env:"NOTIFY_FRONTEND_URL"     env-default:"http://localhost:3000"`
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"NOTIFY_DISPATCH_TIMEOUT" env-default:"30s"`
	Concurrency     int           `yaml:"concurrency"      env:"NOTIFY_CONCURRENCY"      env-default:"4"`
}

// AgreementLink returns the frontend URL where a signer opens an agreement.
func (c NotifyConfig) AgreementLink() string {
	return strings.TrimRight(c.FrontendURL, "/") + "/agreements"
}

// RateLimitConfig holds per-client request limits for signer endpoints.
type RateLimitConfig struct {
	SignPerMinute int `yaml:"sign_per_minute" env:"RATELIMIT_SIGN_PER_MINUTE" env-default:"10"`
	ViewPerMinute int `yaml:"view_per_minute" env:"RATELIMIT_VIEW_PER_MINUTE" env-default:"60"`
}
