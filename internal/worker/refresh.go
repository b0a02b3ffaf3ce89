package worker

import (
	"context"
	"fmt"

	"domainwatch/internal/watcher"
	"domainwatch/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DirectoryRefresher rebuilds the TLD directory from its external sources.
type DirectoryRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker is a River worker that runs the periodic directory refresh.
type RefreshWorker struct {
	river.WorkerDefaults[watcher.RefreshDirectoryArgs]

	refresher DirectoryRefresher
}

// NewRefreshWorker constructs a RefreshWorker using the provided refresher.
func NewRefreshWorker(refresher DirectoryRefresher) *RefreshWorker {
	return &RefreshWorker{refresher: refresher}
}

// Work executes one directory refresh run. A partially failed run returns an
// error so River retries it; successful source steps have already committed.
func (w *RefreshWorker) Work(ctx context.Context, job *river.Job[watcher.RefreshDirectoryArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.refresher.Refresh(ctx); err != nil {
		logger.Error(ctx, "error refreshing directory", zap.Error(err))

		return fmt.Errorf("could not refresh directory: %w", err)
	}

	logger.Info(ctx, "directory refreshed")

	return nil
}
