package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"domainwatch/internal/api"
	"domainwatch/internal/api/handler/v1handler"
	"domainwatch/internal/config"
	"domainwatch/internal/directory"
	"domainwatch/internal/notifier"
	"domainwatch/internal/refresher"
	"domainwatch/internal/resolver"
	"domainwatch/internal/watcher"
	"domainwatch/internal/watchlist"
	"domainwatch/internal/worker"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/rdap/rdaphttp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// watchCommand constructs the 'watch' subcommand that starts the API server
// and the background workers processing watch lists and directory refreshes.
func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			dir := directory.New(strg)
			if err := dir.Load(ctx); err != nil {
				// a cold database has no routes yet, the periodic refresh
				// job fills the directory shortly after startup.
				logger.Warn(ctx, "could not load lookup directory", zap.Error(err))
			}

			httpClient := &http.Client{}
			res := resolver.New(dir, rdaphttp.New(httpClient), cfg.Watch.LookupTimeout)
			disp := notifier.New(notifier.LogSender{}, cfg.Watch.NotifyTimeout)
			scheduler := watcher.New(strg, res, disp, watcher.EligibilityPolicy{
				StaleAfter:     cfg.Watch.StaleAfter,
				CloseWatchDays: cfg.Watch.CloseWatchDays,
			})
			refr := refresher.New(httpClient, dir, refresher.Options{
				TLDListURL:   cfg.Refresh.TLDListURL,
				GTLDListURL:  cfg.Refresh.GTLDListURL,
				BootstrapURL: cfg.Refresh.BootstrapURL,
				Timeout:      cfg.Refresh.Timeout,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, scheduler, refr, cfg.Refresh.Interval)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					WatchLists: watchlist.New(strg, watchlist.NewOptions(cfg)),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
