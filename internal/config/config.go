package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Storage   StorageConfig   `yaml:"storage"`
	Reminders RemindersConfig `yaml:"reminders"`
	Report    ReportConfig    `yaml:"report"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds bearer token settings. Tokens are issued by an external
// identity provider; with an empty secret every request is anonymous.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"adminos"`
}

// Enabled reports whether bearer tokens are verified.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"120"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"20"`
}

// StorageConfig holds file locations for uploads and backups.
type StorageConfig struct {
	MediaRoot       string `yaml:"media_root"        env:"STORAGE_MEDIA_ROOT"        env-default:"media"`
	BackupRoot      string `yaml:"backup_root"       env:"STORAGE_BACKUP_ROOT"       env-default:"backups"`
	BackupRetention int    `yaml:"backup_retention"  env:"STORAGE_BACKUP_RETENTION"  env-default:"5"`
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"  env:"STORAGE_MAX_UPLOAD_BYTES"  env-default:"33554432"`
}

// RemindersConfig holds reminder generation and listing settings.
type RemindersConfig struct {
	HorizonDays       int    `yaml:"horizon_days"        env:"REMINDERS_HORIZON_DAYS"        env-default:"7"`
	PendingWindowDays int    `yaml:"pending_window_days" env:"REMINDERS_PENDING_WINDOW_DAYS" env-default:"7"`
	RemindHour        int    `yaml:"remind_hour"         env:"REMINDERS_REMIND_HOUR"         env-default:"9"`
	Timezone          string `yaml:"timezone"            env:"REMINDERS_TIMEZONE"            env-default:"UTC"`

	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// Report backends.
const (
	ReportBackendAuto   = "auto"
	ReportBackendHTML   = "html"
	ReportBackendVector = "vector"
)

// ReportConfig selects the PDF backend. "auto" tries the browser first and
// falls back to the vector renderer.
type ReportConfig struct {
	Backend        string        `yaml:"backend"         env:"REPORT_BACKEND"         env-default:"auto"`
	BrowserTimeout time.Duration `yaml:"browser_timeout" env:"REPORT_BROWSER_TIMEOUT" env-default:"20s"`
}
