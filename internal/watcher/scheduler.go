// Package watcher implements the watch pipeline: per-domain eligibility,
// registry re-query, change detection and notification fan-out.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/rdap"
	"domainwatch/pkg/serrors"
	"domainwatch/pkg/storage"

	"go.uber.org/zap"
)

// Resolver resolves a canonical domain name into a fresh registry snapshot.
type Resolver interface {
	Resolve(ctx context.Context, name string) (*domain.Snapshot, error)
}

// Dispatcher delivers notifications to the watchlist owner. Implementations
// swallow delivery failures; neither method returns an error.
type Dispatcher interface {
	Dispatch(ctx context.Context, wl domain.WatchList, owner domain.User, events []domain.Event)
	DispatchFailure(ctx context.Context, wl domain.WatchList, owner domain.User, name string, lookupErr error)
}

// Scheduler processes watchlist triggers. Each tracked domain is handled
// independently: one domain's failure never aborts processing of its siblings.
type Scheduler struct {
	storage    storage.Storage
	resolver   Resolver
	dispatcher Dispatcher
	policy     EligibilityPolicy
}

// New creates a Scheduler.
func New(strg storage.Storage, res Resolver, disp Dispatcher, policy EligibilityPolicy) *Scheduler {
	return &Scheduler{
		storage:    strg,
		resolver:   res,
		dispatcher: disp,
		policy:     policy,
	}
}

// Process runs one watch cycle for the given watchlist: select eligible
// domains, re-query the registry, detect changes, commit the fresh snapshot
// and notify the owner. It returns an error only for watchlist-level failures
// (unknown token, storage unavailable); per-domain failures are classified,
// logged and isolated.
func (s *Scheduler) Process(ctx context.Context, token domain.WatchListToken) error {
	wl, err := s.storage.WatchListByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("could not load watchlist: %w", err)
	}
	if wl == nil {
		return serrors.With(serrors.ErrNotFound, "watchlist %s not found", token)
	}

	owner, err := s.storage.UserByID(ctx, wl.UserID)
	if err != nil {
		return fmt.Errorf("could not load watchlist owner: %w", err)
	}
	if owner == nil {
		return serrors.With(serrors.ErrNotFound, "owner of watchlist %s not found", token)
	}

	stored, err := s.storage.DomainsByNames(ctx, wl.Domains...)
	if err != nil {
		return fmt.Errorf("could not load tracked domains: %w", err)
	}
	byName := make(map[string]domain.Domain, len(stored))
	for _, d := range stored {
		byName[d.LdhName] = d
	}

	now := time.Now().UTC()
	for _, name := range wl.Domains {
		// cancellation is cooperative at the domain boundary
		if ctx.Err() != nil {
			return fmt.Errorf("watch run cancelled: %w", ctx.Err())
		}

		s.processDomain(ctx, *wl, *owner, byName[name], name, now)
	}

	return nil
}

// processDomain runs the resolve, diff, commit, notify sequence for a single
// domain. All failures are terminal for this domain only.
func (s *Scheduler) processDomain(ctx context.Context,
	wl domain.WatchList,
	owner domain.User,
	prev domain.Domain,
	name string,
	now time.Time) {
	ctx = logger.WithFields(ctx,
		zap.String("watchList", wl.Token.String()),
		zap.String("domain", name))

	if !s.policy.Eligible(prev, now) {
		logger.Debug(ctx, "domain not eligible, skipping")

		return
	}

	snap, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		s.classifyLookupFailure(ctx, wl, owner, name, err)

		return
	}

	events := Diff(name, prev.Snapshot, *snap, now)

	// the snapshot, its events and the follow-up trigger commit atomically
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.EnsureDomains(ctx, name); err != nil {
			return fmt.Errorf("could not ensure domain row: %w", err)
		}
		if _, err := tx.CommitSnapshot(ctx, name, *snap, now); err != nil {
			return fmt.Errorf("could not commit snapshot: %w", err)
		}
		if len(events) > 0 {
			if err := tx.StoreEvents(ctx, events...); err != nil {
				return fmt.Errorf("could not store events: %w", err)
			}
		}

		// follow-up message for downstream consumers. Nothing in this
		// service works the trigger queue, so runs never re-chain.
		if _, err := tx.AddJob(ctx, DomainTriggerArgs{
			WatchListToken:      wl.Token.String(),
			DomainName:          name,
			PreviousRefreshedAt: prev.RefreshedAt,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue follow-up trigger: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Error(ctx, "could not commit watch result", zap.Error(err))

		return
	}

	domainsProcessed.Inc()
	for _, event := range events {
		eventsDetected.WithLabelValues(string(event.Kind)).Inc()
	}

	if len(events) > 0 {
		s.dispatcher.Dispatch(ctx, wl, owner, events)
	}
}

// classifyLookupFailure applies the asymmetric failure policy: a protocol
// failure (the registry answered but refused) is surfaced to the owner, while
// transport, parse and routing failures are only logged.
func (s *Scheduler) classifyLookupFailure(ctx context.Context,
	wl domain.WatchList,
	owner domain.User,
	name string,
	err error) {
	switch {
	case errors.Is(err, rdap.ErrProtocol):
		lookupFailures.WithLabelValues("protocol").Inc()
		logger.Warn(ctx, "registry rejected lookup", zap.Error(err))
		s.dispatcher.DispatchFailure(ctx, wl, owner, name, err)
	case errors.Is(err, rdap.ErrTransport):
		lookupFailures.WithLabelValues("transport").Inc()
		logger.Error(ctx, "registry lookup transport failure", zap.Error(err))
	case errors.Is(err, rdap.ErrParse):
		lookupFailures.WithLabelValues("parse").Inc()
		logger.Error(ctx, "registry response unparsable", zap.Error(err))
	default:
		lookupFailures.WithLabelValues("route").Inc()
		logger.Error(ctx, "could not route lookup", zap.Error(err))
	}
}
