package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "domainwatch_notifications_sent_total",
	Help: "Number of notifications handed to the sender, by template and outcome.",
}, []string{"template", "outcome"})
