package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/koreannum/app/web"
	"github.com/dmitrymomot/koreannum/core/config"
	"github.com/dmitrymomot/koreannum/core/logger"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg web.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg web.Config) error {
	app, err := web.NewApp(web.WithConfig(cfg))
	if err != nil {
		return err
	}
	log := app.Logger()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(app.Run(ctx))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		return err
	}
	return nil
}
