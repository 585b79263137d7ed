package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oronp/talk-to-figma-mcp/config"
	"github.com/oronp/talk-to-figma-mcp/logger"
	"github.com/oronp/talk-to-figma-mcp/relay"
)

// NewSocketCmd creates the "socket" subcommand: the channel relay server
// that the Figma plugin and MCP clients both connect to.
func NewSocketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socket",
		Short: "Start the websocket relay server",
		RunE:  runSocket,
	}

	cmd.Flags().IntP("port", "p", 0, "Listen port (default from settings or PORT)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")

	return cmd
}

func runSocket(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return exitError(exitConfig, "loading settings: %v", err)
	}
	port := settings.GetPort()
	if flagPort, _ := cmd.Flags().GetInt("port"); flagPort > 0 {
		port = flagPort
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		settings.SetDebug(true)
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		settings.SetDebug(true)
	}

	logPath, err := logger.RelayLogPath()
	if err != nil {
		return exitError(exitConfig, "resolving log path: %v", err)
	}
	if err := logger.Init(logPath); err != nil {
		return exitError(exitConfig, "initializing logger: %v", err)
	}
	defer logger.Close()
	logger.SetDebug(settings.GetDebug())

	srv := relay.NewServer(port)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Relay listening on port %d\n", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(cmd.OutOrStdout(), "Shutting down...")
		if err := srv.Shutdown(context.Background()); err != nil {
			return exitError(exitRuntime, "shutdown error: %v", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return exitError(exitRuntime, "relay server: %v", err)
		}
		return nil
	}
}
