package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avtools/premiere-mcp/internal/config"
	"github.com/avtools/premiere-mcp/internal/hostapp"
	"github.com/avtools/premiere-mcp/internal/paths"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run diagnostic checks on the bridge setup",
		Long: `Verifies that the configuration parses, the mailbox directory is
writable, and a Premiere Pro installation can be found. The host check is
informational: the bridge works as long as Premiere runs the panel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("premiere-mcp doctor v%s\n\n", version)

			failed := 0

			cfgPath := resolveConfigPath()
			cfg, err := config.LoadFrom(cfgPath)
			switch {
			case err != nil:
				printFail("Config file", err.Error())
				failed++
				cfg = &config.Config{}
			case configFileExists(cfgPath):
				printPass("Config file", cfgPath)
			default:
				printPass("Config file", "not present, using defaults")
			}

			if err := config.Validate(cfg); err != nil {
				printFail("Config validation", err.Error())
				failed++
			} else {
				printPass("Config validation", "valid")
			}

			mailbox := cfg.MailboxDirOrDefault()
			if err := checkMailboxWritable(mailbox); err != nil {
				printFail("Mailbox directory", err.Error())
				failed++
			} else {
				printPass("Mailbox directory", mailbox)
			}

			if path, ok := hostapp.Detect(cfg.Host.AppPaths); ok {
				printPass("Premiere Pro install", path)
			} else {
				// Informational: the panel may run inside a host we cannot
				// locate.
				printWarn("Premiere Pro install", "not detected; the bridge still works if Premiere is running with the panel loaded")
			}

			fmt.Println()
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			fmt.Println("All checks passed.")
			return nil
		},
	}
}

func configFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func checkMailboxWritable(dir string) error {
	if err := paths.EnsureDir(dir); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0600); err != nil {
		return err
	}
	return os.Remove(probe)
}

func printPass(check, detail string) {
	fmt.Printf("  ok    %-22s %s\n", check, detail)
}

func printWarn(check, detail string) {
	fmt.Printf("  warn  %-22s %s\n", check, detail)
}

func printFail(check, detail string) {
	fmt.Printf("  FAIL  %-22s %s\n", check, detail)
}
