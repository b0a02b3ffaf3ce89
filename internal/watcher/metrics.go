package watcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	domainsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "domainwatch_domains_processed_total",
		Help: "Domains successfully resolved and committed by watch runs.",
	})

	lookupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainwatch_lookup_failures_total",
		Help: "Registry lookups that failed, partitioned by error class.",
	}, []string{"class"})

	eventsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainwatch_events_detected_total",
		Help: "Domain change events produced by the change detector.",
	}, []string{"kind"})
)
