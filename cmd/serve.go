package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/logging"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the manual over HTTP for browser clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		logger, err := logging.New(os.Stdout, cfg.Log.Level, "json")
		if err != nil {
			return err
		}

		cat, pool, err := loadContent(cfg.CataloguePath, logger)
		if err != nil {
			return err
		}

		srv, err := web.New(cat, pool, web.Options{
			Addr:           cfg.Server.Addr,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			SessionTTL:     cfg.Server.SessionTTL,
			SecureCookies:  cfg.Server.SecureCookies,
			MaxSessions:    cfg.Server.MaxSessions,
			Seed:           cfg.Seed,
			Logger:         logger,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DSMANUAL_ADDR, default :8080)")
}
