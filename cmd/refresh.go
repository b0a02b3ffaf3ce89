package main

import (
	"context"
	"net/http"

	"domainwatch/internal/config"
	"domainwatch/internal/directory"
	"domainwatch/internal/refresher"
	"domainwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCommand constructs the 'refresh' subcommand that runs a one-shot
// refresh of the TLD and RDAP server directory from its upstream sources.
func refreshCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refreshes the TLD and RDAP server directory once",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			dir := directory.New(strg)
			refr := refresher.New(&http.Client{}, dir, refresher.Options{
				TLDListURL:   cfg.Refresh.TLDListURL,
				GTLDListURL:  cfg.Refresh.GTLDListURL,
				BootstrapURL: cfg.Refresh.BootstrapURL,
				Timeout:      cfg.Refresh.Timeout,
			})

			if err := refr.Refresh(ctx); err != nil {
				logger.Fatal(ctx, "directory refresh failed", zap.Error(err))
			}

			logger.Info(ctx, "directory refreshed")
		},
	}

	return cmd
}
