package parsers

import (
	"log-report/internal/shared/metrics"
)

var (
	metricRecordsParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParse,
			Name:      "records_parsed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
