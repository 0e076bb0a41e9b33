package fetchers

import (
	"log-report/internal/shared/metrics"
)

var (
	metricFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFetch,
			Name:      "fetch_total",
		},
		[]string{"scheme", metrics.FieldErrorCode},
	)

	metricFetchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFetch,
			Name:      "fetch_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"scheme"},
	)
)
