package bridge

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotInitialized is returned by Run before Initialize has succeeded.
var ErrNotInitialized = errors.New("bridge not initialized")

// InitError wraps a failure to prepare the mailbox directory.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("bridge initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// TimeoutError is returned when no response artifact appeared before the
// deadline. Elapsed is the observed wait, which may exceed Timeout by up to
// one poll interval.
type TimeoutError struct {
	Label   string
	Elapsed time.Duration
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s: no response from host after %s (timeout %s)", e.Label, e.Elapsed.Round(time.Millisecond), e.Timeout)
	}
	return fmt.Sprintf("no response from host after %s (timeout %s)", e.Elapsed.Round(time.Millisecond), e.Timeout)
}

// ParseError is returned when a response artifact exists but is not valid
// JSON. It is a protocol violation, reported immediately rather than
// retried: continued polling would only mask it until the timeout.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response artifact %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FilesystemError is any mailbox I/O fault other than "response not written
// yet". Not retried; a faulting filesystem is not a pending answer.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("mailbox %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
