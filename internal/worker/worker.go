// Package worker wires the watch and refresh pipelines into River background
// jobs.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"domainwatch/internal/watcher"
	"domainwatch/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the watchlist and directory-refresh workers and starts the
// River client. The directory refresh also runs periodically at
// refreshInterval, beginning immediately on startup.
//
// Follow-up domain triggers (watcher.DomainTriggerArgs) land on their own
// queue which is intentionally absent from the queue configuration: they are
// produced for downstream consumers and never worked by this service.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	scheduler Processor,
	refresher DirectoryRefresher,
	refreshInterval time.Duration) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewWatchListWorker(scheduler))
	river.AddWorker(workers, NewRefreshWorker(refresher))

	periodicJobs := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(refreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return watcher.RefreshDirectoryArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
