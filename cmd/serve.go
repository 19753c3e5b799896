package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/spandanakunder/portfolio/internal/analytics"
	"github.com/spandanakunder/portfolio/internal/config"
	"github.com/spandanakunder/portfolio/internal/logger"
	"github.com/spandanakunder/portfolio/internal/metrics"
	"github.com/spandanakunder/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the HTTP server: the portfolio page, the contact form endpoint,
health and metrics endpoints and, when a password is configured, the visitor
statistics dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		gin.SetMode(cfg.GinMode)

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}

		var store *analytics.Store
		if cfg.Analytics.Enabled {
			store, err = analytics.OpenMemory()
			if err != nil {
				return err
			}
			defer store.Close()
			log.Info(context.Background(), "visitor tracking enabled with hashed IP addresses")
		}

		srv, err := server.New(server.Deps{
			Config:  cfg,
			Logger:  log,
			Profile: profile,
			Relay:   newRelay(cfg, log.Named("contact")),
			Metrics: metrics.NewManager(metrics.WithRuntimeCollectors()),
			Store:   store,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info(ctx, "starting portfolio",
			logger.String("version", Version),
			logger.String("relay", cfg.Contact.Relay),
		)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
