package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/oronp/talk-to-figma-mcp/config"
	"github.com/oronp/talk-to-figma-mcp/logger"
	"github.com/oronp/talk-to-figma-mcp/paths"
)

const relayDialTimeout = 3 * time.Second

// Check is the result of a single environment check.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// NewStatusCmd creates the "status" subcommand, which reports the local
// environment: settings file, log directory, and relay reachability.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check settings, log paths, and relay reachability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return exitError(exitConfig, "loading settings: %v", err)
			}

			failed := false
			for _, check := range RunChecks(cmd.Context(), settings) {
				mark := "ok"
				if !check.OK {
					mark = "fail"
					failed = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-4s %s\n", check.Name, mark, check.Detail)
			}
			if failed {
				return exitError(exitRuntime, "one or more checks failed")
			}
			return nil
		},
	}
}

// RunChecks runs every environment check against the given settings.
func RunChecks(ctx context.Context, settings *config.Settings) []Check {
	return []Check{
		settingsCheck(),
		logsCheck(),
		relayCheck(ctx, settings.WSBaseURL()),
	}
}

func settingsCheck() Check {
	path, err := paths.SettingsFilePath()
	if err != nil {
		return Check{Name: "settings", Detail: err.Error()}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Check{Name: "settings", OK: true, Detail: path + " (not created yet, defaults in use)"}
	} else if err != nil {
		return Check{Name: "settings", Detail: fmt.Sprintf("%s: %v", path, err)}
	}
	return Check{Name: "settings", OK: true, Detail: path}
}

func logsCheck() Check {
	dir, err := paths.LogsDir()
	if err != nil {
		return Check{Name: "logs", Detail: err.Error()}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Check{Name: "logs", Detail: fmt.Sprintf("%s: %v", dir, err)}
	}
	return Check{Name: "logs", OK: true, Detail: dir}
}

func relayCheck(ctx context.Context, baseURL string) Check {
	dialCtx, cancel := context.WithTimeout(ctx, relayDialTimeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, baseURL, nil)
	if err != nil {
		return Check{Name: "relay", Detail: fmt.Sprintf("%s: %v", baseURL, err)}
	}
	conn.Close()
	return Check{Name: "relay", OK: true, Detail: baseURL}
}

// NewLogsCmd creates the "logs" subcommand for inspecting and clearing
// the log files.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show log file locations, optionally clearing them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clear, _ := cmd.Flags().GetBool("clear")
			if clear {
				removed, err := logger.ClearLogs()
				if err != nil {
					return exitError(exitRuntime, "clearing logs: %v", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d log file(s)\n", removed)
				return nil
			}

			mcpLog, err := logger.DefaultLogPath()
			if err != nil {
				return exitError(exitConfig, "resolving log path: %v", err)
			}
			relayLog, err := logger.RelayLogPath()
			if err != nil {
				return exitError(exitConfig, "resolving log path: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mcp:   %s\nrelay: %s\n", mcpLog, relayLog)
			return nil
		},
	}

	cmd.Flags().Bool("clear", false, "Delete all log files")

	return cmd
}
