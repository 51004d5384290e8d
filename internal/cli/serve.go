package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/server"
)

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP planning API",
		Long: `Serve the planning API, saved configurations and Prometheus metrics.

  POST   /api/v1/plan
  POST   /api/v1/compare
  POST   /api/v1/import/csv
  GET    /api/v1/configs
  POST   /api/v1/configs
  GET    /api/v1/configs/:name
  DELETE /api/v1/configs/:name
  POST   /api/v1/configs/:name/plan
  GET    /healthz
  GET    /metrics`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = app.config.ListenAddr
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	opts := server.Options{
		Store:     st,
		Optimizer: &engine.Optimizer{Logger: app.logger},
		Logger:    app.logger,
		RateLimit: app.config.RateLimit,
		RateBurst: app.config.RateBurst,
	}
	if ttl := app.config.PlanCacheTTL; ttl > 0 {
		cache, err := server.NewPlanCache(time.Duration(ttl)*time.Second, 64)
		if err != nil {
			return err
		}
		defer cache.Close()
		opts.Cache = cache
	}
	srv := server.New(opts)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, addr)
}
