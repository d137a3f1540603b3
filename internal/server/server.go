// Package server adapts the dispatch registry to MCP. Each registered
// operation surfaces as one tool; outcomes serialize straight into tool
// results, so no error ever crosses the protocol boundary unwrapped.
package server

import (
	"context"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/avtools/premiere-mcp/internal/dispatch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	Name    = "premiere-mcp"
	Version = "0.1.0"
)

// Server exposes a dispatch registry over MCP stdio.
type Server struct {
	registry *dispatch.Registry
	logger   *slog.Logger
	mcp      *server.MCPServer
}

// New builds the MCP server and registers every catalogue operation as a
// tool.
func New(registry *dispatch.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		registry: registry,
		logger:   logger,
		mcp: server.NewMCPServer(Name, Version,
			server.WithToolCapabilities(true),
		),
	}

	for _, desc := range registry.List() {
		s.mcp.AddTool(toolFromDescriptor(desc), s.handlerFor(desc.Name))
	}
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout until EOF or error.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", "tools", len(s.registry.Names()))
	return server.ServeStdio(s.mcp)
}

// toolFromDescriptor maps an operation's contract onto a tool input schema.
// The contract is the single source of truth: this is a projection of it,
// not a second definition.
func toolFromDescriptor(desc dispatch.Descriptor) mcp.Tool {
	properties := make(map[string]any, len(desc.Contract.Fields))
	var required []string

	for _, f := range desc.Contract.Fields {
		prop := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if len(f.Enum) > 0 {
			values := make([]any, len(f.Enum))
			for i, v := range f.Enum {
				values[i] = v
			}
			prop["enum"] = values
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return mcp.Tool{
		Name:        desc.Name,
		Description: desc.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
		Annotations: mcp.ToolAnnotation{
			ReadOnlyHint:    mcp.ToBoolPtr(desc.ReadOnly),
			DestructiveHint: mcp.ToBoolPtr(desc.Destructive),
			OpenWorldHint:   mcp.ToBoolPtr(false),
		},
	}
}

func (s *Server) handlerFor(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outcome := s.registry.Invoke(ctx, name, request.GetArguments())
		return renderOutcome(outcome), nil
	}
}

// renderOutcome serializes an Outcome as a tool result. Failures become
// IsError results carrying the structured failure, so the calling agent
// sees kind and message rather than a transport fault.
func renderOutcome(outcome dispatch.Outcome) *mcp.CallToolResult {
	if outcome.OK {
		data, err := json.Marshal(outcome.Value)
		if err != nil {
			return mcp.NewToolResultError("encoding result: " + err.Error())
		}
		return mcp.NewToolResultText(string(data))
	}

	data, err := json.Marshal(outcome.Failure)
	if err != nil {
		return mcp.NewToolResultError(outcome.Failure.Message)
	}
	return mcp.NewToolResultError(string(data))
}
