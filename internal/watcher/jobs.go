package watcher

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// activeJobStates lists every state in which a job counts as a duplicate for
// uniqueness purposes.
var activeJobStates = []rivertype.JobState{
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// ProcessWatchListArgs contains the arguments for a watchlist trigger job
// submitted to River. The token is the unique key so only one run per
// watchlist can be in flight at a time.
type ProcessWatchListArgs struct {
	// WatchListToken identifies the watchlist to process.
	WatchListToken string `json:"watchListToken" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the watchlist worker.
func (args ProcessWatchListArgs) Kind() string { return "ProcessWatchListJob" }

// InsertOpts enforces one in-flight job per watchlist.
func (args ProcessWatchListArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeJobStates,
		},
	}
}

// DomainTriggerArgs is the follow-up message emitted for every successfully
// processed domain. Downstream consumers own this queue; no worker in this
// service consumes it, so processing never re-chains itself.
type DomainTriggerArgs struct {
	// WatchListToken identifies the watchlist the domain was processed under.
	WatchListToken string `json:"watchListToken"`
	// DomainName is the canonical name of the processed domain.
	DomainName string `json:"domainName"`
	// PreviousRefreshedAt is the refresh timestamp the run started from.
	PreviousRefreshedAt time.Time `json:"previousRefreshedAt"`
}

// Kind returns the River job kind for follow-up domain triggers.
func (args DomainTriggerArgs) Kind() string { return "DomainTriggerJob" }

// InsertOpts routes follow-up triggers to their own queue so the default
// worker pool never picks them up.
func (args DomainTriggerArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: "domain-triggers"}
}

// RefreshDirectoryArgs triggers a full directory rebuild from the external
// registry lists.
type RefreshDirectoryArgs struct{}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args RefreshDirectoryArgs) Kind() string { return "RefreshDirectoryJob" }

// InsertOpts enforces a single in-flight refresh.
func (args RefreshDirectoryArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeJobStates,
		},
	}
}
