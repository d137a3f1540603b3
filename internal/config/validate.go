package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Validate checks configuration invariants and returns actionable errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if cfg.MailboxDir != "" && !filepath.IsAbs(cfg.MailboxDir) {
		errs = append(errs, fmt.Errorf("mailbox_dir: %q is not an absolute path", cfg.MailboxDir))
	}

	if err := validateDuration("poll_interval", cfg.PollInterval); err != nil {
		errs = append(errs, err)
	}
	if err := validateDuration("default_timeout", cfg.DefaultTimeout); err != nil {
		errs = append(errs, err)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: %q is not one of debug, info, warn, error", cfg.LogLevel))
	}

	for i, p := range cfg.Host.AppPaths {
		if p == "" {
			errs = append(errs, fmt.Errorf("host.app_paths[%d]: empty path", i))
		}
	}

	return errors.Join(errs...)
}

func validateDuration(field, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %q is not a duration (try \"100ms\" or \"30s\")", field, raw)
	}
	if d <= 0 {
		return fmt.Errorf("%s: must be positive, got %q", field, raw)
	}
	return nil
}
