package worker

import (
	"context"
	"errors"
	"fmt"

	"domainwatch/internal/watcher"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Processor runs one watch cycle for a watchlist.
type Processor interface {
	Process(ctx context.Context, token domain.WatchListToken) error
}

// WatchListWorker is a River worker that runs the watch pipeline for the
// watchlist named in the job arguments.
type WatchListWorker struct {
	river.WorkerDefaults[watcher.ProcessWatchListArgs]

	scheduler Processor
}

// NewWatchListWorker constructs a WatchListWorker using the provided scheduler.
func NewWatchListWorker(scheduler Processor) *WatchListWorker {
	return &WatchListWorker{scheduler: scheduler}
}

// Work executes a single watchlist trigger. Malformed tokens and vanished
// watchlists cancel the job; everything else is retryable.
func (w *WatchListWorker) Work(ctx context.Context, job *river.Job[watcher.ProcessWatchListArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("watchList", job.Args.WatchListToken))

	token, err := domain.ParseWatchListToken(job.Args.WatchListToken)
	if err != nil {
		return river.JobCancel(fmt.Errorf("malformed watchlist token: %w", err)) //nolint: wrapcheck
	}

	if err := w.scheduler.Process(ctx, token); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			// the watchlist was deleted after the trigger was enqueued
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error processing watchlist", zap.Error(err))

		return fmt.Errorf("could not process watchlist: %w", err)
	}

	logger.Info(ctx, "watchlist processed")

	return nil
}
