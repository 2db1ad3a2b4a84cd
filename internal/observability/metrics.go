package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	recordsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedctl",
			Subsystem: "codec",
			Name:      "records_decoded_total",
			Help:      "Price update records decoded, by trust level.",
		},
		[]string{"trust"},
	)
	recordsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "feedctl",
			Subsystem: "codec",
			Name:      "records_rejected_total",
			Help:      "Account dumps that did not decode as price update records.",
		},
	)
	queriesServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedctl",
			Subsystem: "query",
			Name:      "served_total",
			Help:      "Price queries answered with a usable price.",
		},
		[]string{"feed"},
	)
	queryFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedctl",
			Subsystem: "query",
			Name:      "failures_total",
			Help:      "Price queries rejected, by reason.",
		},
		[]string{"feed", "reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(recordsDecoded, recordsRejected, queriesServed, queryFailures)
	})
}

func RecordDecoded(trust string) {
	recordsDecoded.WithLabelValues(trust).Inc()
}

func RecordRejected() {
	recordsRejected.Inc()
}

func RecordQueryServed(feed string) {
	queriesServed.WithLabelValues(feed).Inc()
}

func RecordQueryFailure(feed, reason string) {
	queryFailures.WithLabelValues(feed, reason).Inc()
}
