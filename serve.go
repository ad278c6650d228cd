package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/anirudh-pedro/Aniru-AI/api"
	"github.com/anirudh-pedro/Aniru-AI/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP formatting service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("config")

			// reading .env config file
			config, err := util.LoadConfig(dir)
			if err != nil {
				return err
			}

			if config.IsDevelopment() {
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			}

			// Configure the validator to use json tags for field names in errors
			api.UseJSONFieldNames()

			// stop() or a signal catch makes context Done
			ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals...)
			defer stop()

			waitGroup, ctx := errgroup.WithContext(ctx)

			if err := RunGinServer(ctx, waitGroup, config); err != nil {
				return err
			}

			return waitGroup.Wait()
		},
	}
}

// RunGinServer starts the HTTP service and stops it gracefully once ctx is done.
func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
) error {
	service, err := api.NewService(config)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return err
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", service.Addr())

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		toCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})

	return nil
}
