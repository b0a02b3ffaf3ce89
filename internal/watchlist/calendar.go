package watchlist

import (
	"context"
	"fmt"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/serrors"

	ics "github.com/arran4/golang-ical"
)

// Calendar renders the watchlist as an iCalendar document: one all-day entry
// per known expiration date plus one entry per recorded change event.
func (s service) Calendar(ctx context.Context, token domain.WatchListToken) (string, error) {
	wl, err := s.storage.WatchListByToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("could not load watchlist: %w", err)
	}
	if wl == nil {
		return "", serrors.With(serrors.ErrNotFound, "watchlist not found")
	}

	domains, err := s.storage.DomainsByNames(ctx, wl.Domains...)
	if err != nil {
		return "", fmt.Errorf("could not load tracked domains: %w", err)
	}

	events, err := s.storage.EventsByDomainNames(ctx, wl.Domains...)
	if err != nil {
		return "", fmt.Errorf("could not load domain events: %w", err)
	}

	now := time.Now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//domainwatch//calendar//EN")
	cal.SetName(wl.Name)

	for _, d := range domains {
		if d.Snapshot.ExpiresAt.IsZero() {
			continue
		}

		entry := cal.AddEvent(fmt.Sprintf("expiration-%s@%s", d.LdhName, token))
		entry.SetDtStampTime(now)
		entry.SetAllDayStartAt(d.Snapshot.ExpiresAt.UTC())
		entry.SetSummary(fmt.Sprintf("%s expires", d.LdhName))
	}

	for _, event := range events {
		entry := cal.AddEvent(fmt.Sprintf("%s-%s-%d@%s",
			event.Kind, event.DomainName, event.Date.Unix(), token))
		entry.SetDtStampTime(now)
		entry.SetStartAt(event.Date.UTC())
		entry.SetEndAt(event.Date.UTC())
		entry.SetSummary(fmt.Sprintf("%s: %s", event.DomainName, event.Kind))
	}

	return cal.Serialize(), nil
}
