// Package bridge implements the file-mailbox IPC channel to Premiere Pro.
//
// The host cannot be linked or called over RPC, so each call is a pair of
// files in a shared directory: the bridge writes request-<id>.json and the
// companion panel running inside Premiere answers with response-<id>.json.
// Correlation is by filename only; there is no integrity check tying a
// response to its request beyond the id, which is acceptable only because
// the mailbox directory is created 0700 on a single-user machine.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/avtools/premiere-mcp/internal/paths"
)

// DefaultPollInterval is used when Options.PollInterval is zero.
const DefaultPollInterval = 100 * time.Millisecond

// Options configures a Bridge. The zero value is usable: platform-default
// mailbox dir, default poll interval, discarded logs, no host detection.
type Options struct {
	// Dir is the mailbox directory shared with the companion panel.
	Dir string

	// PollInterval is how often Run checks for a response artifact.
	PollInterval time.Duration

	Logger *slog.Logger

	// DetectHost, when set, is called once during Initialize as a
	// diagnostic. Its outcome is logged and otherwise ignored: the panel
	// may already be running inside a host we cannot locate.
	DetectHost func() (string, bool)
}

// Bridge exchanges correlated request/response artifacts with the host.
// Each Run call owns its own artifact pair, so concurrent calls never
// interfere. The bridge deletes only files it created or consumed, never
// unrelated mailbox contents.
type Bridge struct {
	dir          string
	pollInterval time.Duration
	logger       *slog.Logger
	detectHost   func() (string, bool)
	ready        atomic.Bool
}

// New creates a Bridge. Call Initialize before Run.
func New(opts Options) *Bridge {
	dir := opts.Dir
	if dir == "" {
		dir = paths.DefaultMailboxDir()
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		dir:          dir,
		pollInterval: interval,
		logger:       logger,
		detectHost:   opts.DetectHost,
	}
}

// Initialize creates the mailbox directory and marks the bridge ready.
// Idempotent. Host detection is best-effort and never fails Initialize;
// the mailbox works whether or not we can find the install.
func (b *Bridge) Initialize() error {
	if b.ready.Load() {
		return nil
	}

	if err := paths.EnsureDir(b.dir); err != nil {
		return &InitError{Err: fmt.Errorf("creating mailbox dir %s: %w", b.dir, err)}
	}

	if b.detectHost != nil {
		if path, ok := b.detectHost(); ok {
			b.logger.Info("host install detected", "path", path)
		} else {
			b.logger.Warn("host install not detected; assuming Premiere is already running with the panel loaded")
		}
	}

	b.ready.Store(true)
	b.logger.Info("bridge ready", "mailbox", b.dir, "poll_interval", b.pollInterval)
	return nil
}

// Ready reports whether Initialize has succeeded.
func (b *Bridge) Ready() bool { return b.ready.Load() }

// Dir returns the mailbox directory.
func (b *Bridge) Dir() string { return b.dir }

// Run writes payload as a request artifact and polls for the matching
// response until timeout. See RunLabeled.
func (b *Bridge) Run(ctx context.Context, payload string, timeout time.Duration) (any, error) {
	return b.RunLabeled(ctx, "", payload, timeout)
}

// RunLabeled is Run with an operation label carried into timeout errors
// for diagnostics.
//
// Exactly one poll condition continues the loop: the response file not
// existing yet. A response that exists but fails to parse is a protocol
// violation and fails immediately; any other read error fails immediately
// as a filesystem fault. Both artifacts are removed on every exit path.
func (b *Bridge) RunLabeled(ctx context.Context, label, payload string, timeout time.Duration) (any, error) {
	if !b.ready.Load() {
		return nil, ErrNotInitialized
	}

	id := uuid.NewString()
	reqPath := requestPath(b.dir, id)
	respPath := responsePath(b.dir, id)
	defer b.removeArtifacts(reqPath, respPath)

	if err := writeRequest(reqPath, id, payload); err != nil {
		return nil, &FilesystemError{Op: "write", Path: reqPath, Err: err}
	}

	start := time.Now()
	deadline := start.Add(timeout)
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		result, err := readResponse(respPath)
		if err == nil {
			return result, nil
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, err
		}
		if !os.IsNotExist(err) {
			return nil, &FilesystemError{Op: "read", Path: respPath, Err: err}
		}

		if time.Now().After(deadline) {
			return nil, &TimeoutError{Label: label, Elapsed: time.Since(start), Timeout: timeout}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Status describes the bridge's current state, for diagnostics.
type Status struct {
	Ready      bool   `json:"ready"`
	MailboxDir string `json:"mailbox_dir"`
	Pending    int    `json:"pending_requests"`
}

// Status reports readiness and the number of unanswered request artifacts
// currently in the mailbox. Direct read, no host round-trip.
func (b *Bridge) Status() Status {
	s := Status{Ready: b.ready.Load(), MailboxDir: b.dir}
	if matches, err := filepath.Glob(filepath.Join(b.dir, "request-*.json")); err == nil {
		s.Pending = len(matches)
	}
	return s
}

// Shutdown removes the mailbox directory. Best-effort: teardown must not
// fail the process, so errors are logged and swallowed.
func (b *Bridge) Shutdown() {
	b.ready.Store(false)
	if err := os.RemoveAll(b.dir); err != nil {
		b.logger.Warn("failed to remove mailbox dir", "dir", b.dir, "error", err)
	}
}

// removeArtifacts deletes a request/response pair. Already-absent files are
// the common case (the panel may consume requests) and are not logged.
func (b *Bridge) removeArtifacts(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			b.logger.Warn("failed to remove mailbox artifact", "path", p, "error", err)
		}
	}
}
