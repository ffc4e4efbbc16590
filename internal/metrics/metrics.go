// Package metrics exposes Prometheus counters for the query pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gramavoice_queries_processed_total",
			Help: "Total processed queries by service category and intent",
		},
		[]string{"category", "intent"},
	)

	complaintsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gramavoice_complaints_registered_total",
			Help: "Total complaints registered by service category",
		},
		[]string{"category"},
	)

	storageFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gramavoice_storage_failures_total",
			Help: "Total ledger read/write failures surfaced to callers",
		},
	)
)

func RecordQuery(category, intent string) {
	queriesProcessed.WithLabelValues(category, intent).Inc()
}

func RecordComplaint(category string) {
	complaintsRegistered.WithLabelValues(category).Inc()
}

func RecordStorageFailure() {
	storageFailures.Inc()
}
