// Package cli wires the talk-to-figma commands: the MCP stdio server,
// the websocket relay, and supporting maintenance commands.
package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oronp/talk-to-figma-mcp/config"
	"github.com/oronp/talk-to-figma-mcp/figma"
	"github.com/oronp/talk-to-figma-mcp/logger"
	"github.com/oronp/talk-to-figma-mcp/mcp"
)

// NewServeCmd creates the "serve" subcommand: the MCP server on stdio.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdin/stdout",
		Long: "Start the Model Context Protocol server. Requests arrive as JSON-RPC " +
			"on stdin and responses are written to stdout, so all logging goes to a file.",
		RunE: runServe,
	}

	cmd.Flags().String("server", "", "Relay host (overrides settings)")
	cmd.Flags().Int("port", 0, "Relay port (overrides settings)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return exitError(exitConfig, "loading settings: %v", err)
	}
	if host, _ := cmd.Flags().GetString("server"); host != "" {
		settings.SetServerHost(host)
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		settings.SetPort(port)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		settings.SetDebug(true)
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		settings.SetDebug(true)
	}

	logPath, err := logger.DefaultLogPath()
	if err != nil {
		return exitError(exitConfig, "resolving log path: %v", err)
	}
	if err := logger.Init(logPath); err != nil {
		return exitError(exitConfig, "initializing logger: %v", err)
	}
	defer logger.Close()
	logger.SetDebug(settings.GetDebug())

	log := logger.WithComponent("serve")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := figma.NewClient(settings.WSBaseURL(),
		figma.WithTimeout(settings.GetCommandTimeout()))
	defer client.Close()

	// The relay may come up after us. Commands reconnect lazily, so a
	// failed initial dial is only worth a log line.
	if err := client.Connect(ctx); err != nil {
		log.Warn("relay not reachable yet, will retry on first command",
			"url", settings.WSBaseURL(), "error", err)
	}

	server := mcp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), client)
	if err := server.Run(ctx); err != nil {
		return exitError(exitRuntime, "mcp server: %v", err)
	}
	return nil
}
