package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit: values must be >= 0")
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Reminders.validate(); err != nil {
		return fmt.Errorf("reminders: %w", err)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if s.MediaRoot == "" || s.BackupRoot == "" {
		return fmt.Errorf("media_root and backup_root are required")
	}
	if s.BackupRetention <= 0 {
		return fmt.Errorf("backup_retention must be > 0 (got %d)", s.BackupRetention)
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (r *RemindersConfig) validate() error {
	if r.HorizonDays < 0 {
		return fmt.Errorf("horizon_days must be >= 0 (got %d)", r.HorizonDays)
	}
	if r.PendingWindowDays <= 0 {
		return fmt.Errorf("pending_window_days must be > 0 (got %d)", r.PendingWindowDays)
	}
	if r.RemindHour < 0 || r.RemindHour > 23 {
		return fmt.Errorf("remind_hour must be in 0..23 (got %d)", r.RemindHour)
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	r.Location = loc

	return nil
}

func (r ReportConfig) validate() error {
	switch r.Backend {
	case ReportBackendAuto, ReportBackendHTML, ReportBackendVector:
	default:
		return fmt.Errorf("backend must be one of auto, html, vector (got %q)", r.Backend)
	}
	if r.BrowserTimeout <= 0 {
		return fmt.Errorf("browser_timeout must be > 0 (got %s)", r.BrowserTimeout)
	}
	return nil
}
