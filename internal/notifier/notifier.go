// Package notifier delivers watch notifications to watchlist owners.
package notifier

import (
	"context"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"

	"go.uber.org/zap"
)

// Template names understood by Sender implementations.
const (
	// TemplateDomainEvent notifies the owner about a detected domain change.
	TemplateDomainEvent = "domain-event"
	// TemplateLookupFailed notifies the owner that the registry rejected a lookup.
	TemplateLookupFailed = "lookup-failed"
)

// Notification is a single message addressed to a watchlist owner.
type Notification struct {
	// Recipient is the owner's email address.
	Recipient string
	// Template selects the message body.
	Template string
	// Context carries template variables (domain name, event kind, ...).
	Context map[string]any
}

// Sender delivers a single notification. Implementations must honor the
// context deadline.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Dispatcher fans detected events out to the watchlist owner, one
// notification per subscribed event. Sends are individually time-bounded and
// isolated: a failed send is logged and never aborts the remaining sends.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
}

// New creates a Dispatcher. timeout bounds each individual send.
func New(sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, timeout: timeout}
}

// Dispatch sends one notification per event whose kind the watchlist
// subscribes to. Unsubscribed kinds are dropped silently.
func (d *Dispatcher) Dispatch(ctx context.Context, wl domain.WatchList, owner domain.User, events []domain.Event) {
	for _, event := range events {
		if !wl.Subscribed(event.Kind) {
			continue
		}

		d.send(ctx, Notification{
			Recipient: owner.Email,
			Template:  TemplateDomainEvent,
			Context: map[string]any{
				"watchList": wl.Token.String(),
				"domain":    event.DomainName,
				"kind":      string(event.Kind),
				"date":      event.Date,
			},
		})
	}
}

// DispatchFailure notifies the owner that the registry returned a failure
// response for one of the watchlist's domains.
func (d *Dispatcher) DispatchFailure(ctx context.Context, wl domain.WatchList, owner domain.User, name string, lookupErr error) {
	d.send(ctx, Notification{
		Recipient: owner.Email,
		Template:  TemplateLookupFailed,
		Context: map[string]any{
			"watchList": wl.Token.String(),
			"domain":    name,
			"reason":    lookupErr.Error(),
		},
	})
}

func (d *Dispatcher) send(ctx context.Context, n Notification) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, n); err != nil {
		notificationsSent.WithLabelValues(n.Template, "error").Inc()
		logger.Error(ctx, "could not deliver notification",
			zap.String("recipient", n.Recipient),
			zap.String("template", n.Template),
			zap.Error(err))

		return
	}

	notificationsSent.WithLabelValues(n.Template, "ok").Inc()
}
