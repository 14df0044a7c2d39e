package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlbench/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the workbench web server",
		Long: `Start a local web server exposing the workbench JSON API.

Each browser session gets its own editor, results, view parameters, and
execution history over a shared query engine.`,
		Example: `  # Start on the default port
  sqlbench serve

  # Start on a custom port
  sqlbench serve --port 3000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx := NewCommandContext()
	srvCfg := cmdCtx.Cfg.GetServerConfig()

	port := srvCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	secret := srvCfg.SessionSecret
	if env := os.Getenv("SQLBENCH_SESSION_SECRET"); env != "" {
		secret = env
	}

	server := ui.NewServer(ui.Config{
		Engine:        cmdCtx.Engine,
		Port:          port,
		SessionSecret: secret,
		PageSize:      cmdCtx.Cfg.PageSize,
		HistoryLimit:  cmdCtx.Cfg.HistoryLimit,
		Logger:        cmdCtx.Logger,
	})

	fmt.Printf("Starting workbench server on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}
