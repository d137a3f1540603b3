package ops

import (
	"context"
	"errors"

	"github.com/avtools/premiere-mcp/internal/dispatch"
)

func hostOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "get_host_status",
			Description: "Report bridge readiness and pending mailbox traffic. Answered locally, no host round-trip.",
			Contract:    contract(),
			ReadOnly:    true,
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				if d.Status == nil {
					return nil, errors.New("bridge status unavailable")
				}
				return d.Status(), nil
			},
		},
		{
			Name:        "run_script",
			Description: "Run a raw ExtendScript payload in the host. Escape hatch for operations the catalogue does not cover.",
			Contract: contract(
				field("script", dispatch.TypeString, true, "ExtendScript source to evaluate"),
			),
			Destructive: true,
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				script, _ := args["script"].(string)
				return d.Runner.RunLabeled(ctx, "run_script", script, d.Timeout)
			},
		},
	}
}
