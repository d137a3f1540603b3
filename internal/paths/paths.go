package paths

import (
	"os"
	"path/filepath"
)

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

func xdgDir(envVar, fallbackSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return filepath.Join(v, "premiere-mcp")
	}
	return filepath.Join(homeDir(), fallbackSuffix, "premiere-mcp")
}

// ConfigDir returns the premiere-mcp config directory ($XDG_CONFIG_HOME/premiere-mcp).
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the premiere-mcp state directory ($XDG_STATE_HOME/premiere-mcp).
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// ConfigFile returns the path to config.toml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultMailboxDir returns the default mailbox directory. It lives under
// the system temp dir because the companion panel inside Premiere resolves
// the same location via Folder.temp, and both processes must agree without
// a side channel.
func DefaultMailboxDir() string {
	return filepath.Join(os.TempDir(), "premiere-mcp-bridge")
}

// EnsureDir creates a directory and parents if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0700)
}
