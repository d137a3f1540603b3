// Package dispatch routes named operations to their handlers behind a
// boundary that never raises: every failure mode below it — unknown name,
// contract violation, handler error, handler panic — comes back as a
// structured Outcome.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Handler executes a validated operation. Implementations either compile a
// script payload and run it through the bridge, or call a bridge
// convenience method directly.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Descriptor is the registered definition of one invocable operation.
type Descriptor struct {
	Name        string
	Description string
	Contract    Contract

	// Annotations surfaced to the protocol adapter.
	ReadOnly    bool
	Destructive bool

	Handler Handler
}

// Registry holds the operation catalogue. Populated once at startup, then
// read-only, so lookups need no locking.
type Registry struct {
	byName map[string]Descriptor
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{byName: make(map[string]Descriptor), logger: logger}
}

// Register adds a descriptor. Duplicate names and nil handlers are
// programming errors surfaced at startup, not at invoke time.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no name")
	}
	if d.Handler == nil {
		return fmt.Errorf("operation %s: nil handler", d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("operation %s: already registered", d.Name)
	}
	r.byName[d.Name] = d
	return nil
}

// MustRegister is Register for static catalogue entries.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every registered descriptor, sorted by name.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.byName))
	for _, name := range r.Names() {
		out = append(out, r.byName[name])
	}
	return out
}

// Invoke validates and executes one operation. It never returns an error
// and never panics; callers always receive an Outcome.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) Outcome {
	d, ok := r.byName[name]
	if !ok {
		return fail(KindOperationNotFound,
			fmt.Sprintf("unknown operation %q; valid operations: %s", name, strings.Join(r.Names(), ", ")),
			map[string]any{"operations": r.Names()})
	}

	if args == nil {
		args = map[string]any{}
	}
	if issues := d.Contract.Validate(args); len(issues) > 0 {
		return fail(KindInvalidArguments,
			fmt.Sprintf("invalid arguments for %s:\n%s", name, strings.Join(issues, "\n")),
			map[string]any{"operation": name, "issues": issues})
	}

	value, err := r.execute(ctx, d, args)
	if err != nil {
		// Context deliberately excludes the caller's arguments: they may
		// carry filesystem paths or other sensitive values that must not
		// leak into logs or responses.
		r.logger.Error("operation failed", "operation", name, "error", err)
		return fail(KindExecutionFailed,
			fmt.Sprintf("%s: %v", name, err),
			map[string]any{"operation": name})
	}

	r.logger.Debug("operation succeeded", "operation", name)
	return succeed(value)
}

func (r *Registry) execute(ctx context.Context, d Descriptor, args map[string]any) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panicked: %v", p)
		}
	}()
	return d.Handler(ctx, args)
}
