package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-skiff/skiff/pkg/config"
	"github.com/go-skiff/skiff/pkg/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the debug server",
	Long: `Serve starts the HTTP debug server. POST HTML to /render-tree to
render it and receive the tree as JSON; GET /render-tree returns the most
recently rendered tree, and /health reports pipeline counters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		resolved, err := config.Resolve(configDir)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = resolved.DebugPort
		}

		e, err := engine.New(engine.Options{
			Stylesheet: resolved.Stylesheet,
			CacheSize:  resolved.CacheSize,
		})
		if err != nil {
			return err
		}

		server := engine.NewServer(e)
		actualPort, err := server.Start(port)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "skiff debug server listening on :%d\n", actualPort)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (0 uses the configured port)")
}
