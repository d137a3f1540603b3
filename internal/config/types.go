package config

import "time"

// Defaults applied when the config file is absent or a field is unset.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultRunTimeout   = 30 * time.Second
	DefaultLogLevel     = "info"
)

// Config is the top-level premiere-mcp configuration.
type Config struct {
	// MailboxDir is the shared directory used to exchange request/response
	// artifacts with the companion panel. Empty means the platform default.
	MailboxDir string `toml:"mailbox_dir"`

	// PollInterval is how often the bridge checks for a response artifact.
	PollInterval string `toml:"poll_interval"`

	// DefaultTimeout bounds a single operation round-trip when the caller
	// does not supply its own deadline.
	DefaultTimeout string `toml:"default_timeout"`

	LogLevel string `toml:"log_level"`

	Host HostConfig `toml:"host"`
}

// HostConfig holds hints for locating the Premiere Pro installation.
// Detection is a diagnostic only; the mailbox works without it.
type HostConfig struct {
	AppPaths []string `toml:"app_paths"`
}

// PollIntervalDuration returns the configured poll interval or the default.
// Validate rejects unparseable values; this falls back rather than erroring
// so callers holding an unvalidated config still get a sane interval.
func (c *Config) PollIntervalDuration() time.Duration {
	return durationOrDefault(c.PollInterval, DefaultPollInterval)
}

// DefaultTimeoutDuration returns the configured run timeout or the default.
func (c *Config) DefaultTimeoutDuration() time.Duration {
	return durationOrDefault(c.DefaultTimeout, DefaultRunTimeout)
}

func durationOrDefault(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
