// Package ops defines the operation catalogue: every invocable Premiere
// action, its input contract, and the host function it compiles to. The
// entries are declarative; all protocol logic lives in dispatch and bridge.
package ops

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtools/premiere-mcp/internal/bridge"
	"github.com/avtools/premiere-mcp/internal/dispatch"
	"github.com/avtools/premiere-mcp/internal/escript"
)

// Runner is the slice of the bridge that handlers need.
type Runner interface {
	RunLabeled(ctx context.Context, label, payload string, timeout time.Duration) (any, error)
}

// Deps wires the catalogue to the bridge.
type Deps struct {
	Runner Runner

	// Status backs get_host_status; a direct bridge read, no host round-trip.
	Status func() bridge.Status

	// Timeout bounds each operation's mailbox round-trip.
	Timeout time.Duration
}

// Register installs the full catalogue into reg.
func Register(reg *dispatch.Registry, deps Deps) error {
	if deps.Runner == nil {
		return errors.New("ops: nil runner")
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 30 * time.Second
	}

	groups := [][]dispatch.Descriptor{
		projectOps(deps),
		sequenceOps(deps),
		timelineOps(deps),
		markerOps(deps),
		effectOps(deps),
		audioOps(deps),
		exportOps(deps),
		hostOps(deps),
	}
	for _, group := range groups {
		for _, d := range group {
			if err := reg.Register(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// script returns a handler that compiles the operation into a call against
// the named host function and runs it through the bridge. Validated
// argument names map one-to-one onto the host function's parameters.
func (d Deps) script(op, fn string) dispatch.Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		payload, err := escript.NewCall(fn, args).Compile()
		if err != nil {
			return nil, fmt.Errorf("building payload: %w", err)
		}
		return d.Runner.RunLabeled(ctx, op, payload, d.Timeout)
	}
}

func field(name string, t dispatch.FieldType, required bool, desc string) dispatch.Field {
	return dispatch.Field{Name: name, Type: t, Required: required, Description: desc}
}

func enumField(name string, required bool, desc string, values ...string) dispatch.Field {
	return dispatch.Field{Name: name, Type: dispatch.TypeString, Required: required, Enum: values, Description: desc}
}

func contract(fields ...dispatch.Field) dispatch.Contract {
	return dispatch.Contract{Fields: fields}
}
