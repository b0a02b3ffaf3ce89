// Package watchlist implements watchlist management on top of the storage
// layer, including the limited-mode creation policy.
package watchlist

import (
	"context"
	"errors"
	"fmt"

	"domainwatch/internal/config"
	"domainwatch/internal/watcher"
	"domainwatch/pkg/domain"
	"domainwatch/pkg/serrors"
	"domainwatch/pkg/storage"

	"github.com/google/uuid"
)

// ErrPolicyViolation marks a limited-mode rule breach. The boundary layer
// maps it to an authorization-style denial.
var ErrPolicyViolation = serrors.NewKind("POLICY_VIOLATION")

// Options configure the limited-mode creation policy.
type Options struct {
	// LimitsEnabled toggles policy enforcement.
	LimitsEnabled bool
	// MaxWatchLists caps watchlists per user.
	MaxWatchLists int
	// MaxWatchListDomains caps domains per watchlist.
	MaxWatchListDomains int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LimitsEnabled:       cfg.Limits.Enabled,
		MaxWatchLists:       cfg.Limits.MaxWatchLists,
		MaxWatchListDomains: cfg.Limits.MaxWatchListDomains,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	storage storage.Storage
}

// New creates a Service backed by the provided storage.
func New(strg storage.Storage, options Options) Service {
	return &service{options: options, storage: strg}
}

// Create stores a new watchlist after canonicalizing its domains and checking
// the limited-mode policy. The watchlist row, its domain rows and the domain
// references commit in one transaction.
func (s service) Create(ctx context.Context,
	userID domain.UserID,
	name string,
	domains []string,
	triggers []domain.EventKind) (*domain.WatchList, error) {
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "watchlist name must not be empty")
	}

	names, err := canonicalize(domains)
	if err != nil {
		return nil, err
	}

	if len(triggers) == 0 {
		triggers = domain.EventKinds()
	}
	for _, kind := range triggers {
		if !domain.ValidEventKind(kind) {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown trigger kind %q", kind)
		}
	}

	wl := domain.WatchList{
		Token:    domain.WatchListToken(uuid.New()),
		UserID:   userID,
		Name:     name,
		Domains:  names,
		Triggers: triggers,
	}

	var created *domain.WatchList
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := s.checkPolicy(ctx, tx, userID, names); err != nil {
			return err
		}

		if err := tx.EnsureDomains(ctx, names...); err != nil {
			return fmt.Errorf("could not ensure domain rows: %w", err)
		}

		res, err := tx.StoreWatchList(ctx, wl)
		if err != nil {
			return fmt.Errorf("could not store watchlist: %w", err)
		}
		created = res

		return nil
	}); err != nil {
		// semantic errors (policy, validation) pass through untouched
		var serr *serrors.Error
		if errors.As(err, &serr) {
			return nil, err
		}

		return nil, fmt.Errorf("could not create watchlist: %w", err)
	}

	return created, nil
}

// checkPolicy enforces the limited-mode rules: watchlist count per user,
// domain count per watchlist and no domain tracked twice by the same user.
func (s service) checkPolicy(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID,
	names []string) error {
	if !s.options.LimitsEnabled {
		return nil
	}

	if len(names) > s.options.MaxWatchListDomains {
		return serrors.With(ErrPolicyViolation,
			"watchlist exceeds the domain limit of %d", s.options.MaxWatchListDomains)
	}

	existing, err := tx.UserWatchLists(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not count user watchlists: %w", err)
	}
	if len(existing) >= s.options.MaxWatchLists {
		return serrors.With(ErrPolicyViolation,
			"user already has the maximum of %d watchlists", s.options.MaxWatchLists)
	}

	tracked, err := tx.UserTrackedDomains(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not load user tracked domains: %w", err)
	}
	trackedSet := make(map[string]struct{}, len(tracked))
	for _, name := range tracked {
		trackedSet[name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := trackedSet[name]; ok {
			return serrors.With(ErrPolicyViolation,
				"domain %s is already tracked by another watchlist of this user", name)
		}
	}

	return nil
}

// Lists returns all watchlists owned by the user.
func (s service) Lists(ctx context.Context, userID domain.UserID) ([]domain.WatchList, error) {
	lists, err := s.storage.UserWatchLists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load user watchlists: %w", err)
	}

	return lists, nil
}

// Trigger enqueues a watch run for the watchlist. River's unique jobs
// guarantee at most one queued or running job per watchlist.
func (s service) Trigger(ctx context.Context, token domain.WatchListToken) (bool, error) {
	wl, err := s.storage.WatchListByToken(ctx, token)
	if err != nil {
		return false, fmt.Errorf("could not load watchlist: %w", err)
	}
	if wl == nil {
		return false, serrors.With(serrors.ErrNotFound, "watchlist not found")
	}

	added, err := s.storage.AddJob(ctx, watcher.ProcessWatchListArgs{
		WatchListToken: token.String(),
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue watch run: %w", err)
	}

	return added, nil
}

// canonicalize normalizes and deduplicates the requested domain names,
// preserving first-seen order.
func canonicalize(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "watchlist must track at least one domain")
	}

	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		name, err := domain.CanonicalName(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, nil
}
