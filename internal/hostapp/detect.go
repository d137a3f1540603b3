// Package hostapp locates the Premiere Pro installation. Detection is a
// diagnostic only: the mailbox channel works without knowing where the host
// lives, and the host may already be running from a path we never probe.
package hostapp

import (
	"path/filepath"
	"runtime"
	"sort"
)

type globFunc func(pattern string) ([]string, error)

// Detect probes configured hints first, then well-known install locations
// for the current OS. Returns the best match, preferring newer versions.
func Detect(hints []string) (string, bool) {
	return detectWithGlob(hints, filepath.Glob)
}

func detectWithGlob(hints []string, glob globFunc) (string, bool) {
	if glob == nil {
		glob = filepath.Glob
	}

	patterns := append(append([]string(nil), hints...), defaultPatterns()...)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		matches, err := glob(pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		// Year-versioned install dirs sort chronologically, so the last
		// match is the newest release.
		sort.Strings(matches)
		return matches[len(matches)-1], true
	}
	return "", false
}

func defaultPatterns() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Adobe Premiere Pro */Adobe Premiere Pro *.app",
			"/Applications/Adobe Premiere Pro.app",
		}
	case "windows":
		return []string{
			`C:\Program Files\Adobe\Adobe Premiere Pro *\Adobe Premiere Pro.exe`,
		}
	default:
		return nil
	}
}
