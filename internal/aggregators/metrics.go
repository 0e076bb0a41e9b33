package aggregators

import (
	"log-report/internal/shared/metrics"
)

const browserUnclassified = "unclassified"

// metricBrowserHitsTotal counts requests per classified browser rule.
//
// A request whose user agent matches several rules is counted once per matching rule,
// mirroring BrowserCategoryTotals. Requests matching no rule are counted under
// browser="unclassified".
var (
	metricBrowserHitsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "browser_hits_total",
		},
		[]string{"browser"},
	)

	metricImageRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "requests_total",
		},
		[]string{"resource"},
	)
)
