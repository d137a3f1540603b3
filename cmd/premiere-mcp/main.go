package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/avtools/premiere-mcp/internal/bridge"
	"github.com/avtools/premiere-mcp/internal/config"
	"github.com/avtools/premiere-mcp/internal/dispatch"
	"github.com/avtools/premiere-mcp/internal/hostapp"
	"github.com/avtools/premiere-mcp/internal/logging"
	"github.com/avtools/premiere-mcp/internal/ops"
	"github.com/avtools/premiere-mcp/internal/paths"
	"github.com/avtools/premiere-mcp/internal/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	version    = "0.1.0"
	configPath string // overridable via --config flag
)

func main() {
	root := &cobra.Command{
		Use:   "premiere-mcp",
		Short: "MCP server bridging agents to Adobe Premiere Pro",
		Long: `premiere-mcp exposes Premiere Pro editing operations as MCP tools.
Operations are compiled to ExtendScript and exchanged with the companion
panel through a filesystem mailbox, since Premiere offers no RPC endpoint.`,
		RunE: runServe, // bare invocation serves, the common MCP client setup
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default: $XDG_CONFIG_HOME/premiere-mcp/config.toml)")

	root.AddCommand(serveCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(toolsCmd())
	root.AddCommand(callCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	b, reg, err := buildRuntime(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Shutdown()

	// Remove the mailbox even if the client kills us instead of closing
	// stdin.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		b.Shutdown()
		os.Exit(0)
	}()

	return server.New(reg, logger).ServeStdio()
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the operation catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := offlineRegistry()
			if err != nil {
				return err
			}
			for _, d := range reg.List() {
				fmt.Printf("%s\t%s\n", d.Name, d.Description)
				for _, f := range d.Contract.Fields {
					req := "optional"
					if f.Required {
						req = "required"
					}
					fmt.Printf("    %s (%s, %s)  %s\n", f.Name, f.Type, req, f.Description)
				}
			}
			return nil
		},
	}
}

func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <operation> [json-args]",
		Short: "Invoke one operation against the running host and print the outcome",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			opArgs := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &opArgs); err != nil {
					return fmt.Errorf("parsing args: %w", err)
				}
			}

			b, reg, err := buildRuntime(cfg, logger)
			if err != nil {
				return err
			}
			defer b.Shutdown()

			outcome := reg.Invoke(cmd.Context(), args[0], opArgs)
			data, err := json.MarshalIndent(outcome, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			if !outcome.OK {
				os.Exit(1)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("premiere-mcp %s\n", version)
		},
	}
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFrom(resolveConfigPath())
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, logging.New(cfg.LogLevel), nil
}

// buildRuntime assembles the initialized bridge and the catalogue registry.
func buildRuntime(cfg *config.Config, logger *slog.Logger) (*bridge.Bridge, *dispatch.Registry, error) {
	b := bridge.New(bridge.Options{
		Dir:          cfg.MailboxDirOrDefault(),
		PollInterval: cfg.PollIntervalDuration(),
		Logger:       logging.WithComponent(logger, "bridge"),
		DetectHost: func() (string, bool) {
			return hostapp.Detect(cfg.Host.AppPaths)
		},
	})
	if err := b.Initialize(); err != nil {
		return nil, nil, err
	}

	reg := dispatch.NewRegistry(logging.WithComponent(logger, "dispatch"))
	if err := ops.Register(reg, ops.Deps{
		Runner:  b,
		Status:  b.Status,
		Timeout: cfg.DefaultTimeoutDuration(),
	}); err != nil {
		b.Shutdown()
		return nil, nil, err
	}
	return b, reg, nil
}

// offlineRegistry builds the catalogue without touching the mailbox, for
// inspection commands.
func offlineRegistry() (*dispatch.Registry, error) {
	b := bridge.New(bridge.Options{})
	reg := dispatch.NewRegistry(nil)
	if err := ops.Register(reg, ops.Deps{Runner: b, Status: b.Status}); err != nil {
		return nil, err
	}
	return reg, nil
}

// resolveConfigPath returns the config path from --config flag or default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return paths.ConfigFile()
}
