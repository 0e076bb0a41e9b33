package aggregators

import (
	"context"
	"regexp"
	"sort"

	"log-report/internal/classifiers"
	"log-report/internal/models"
	"log-report/internal/shared/loggers"

	"github.com/mileusna/useragent"
)

var imagePathPattern = regexp.MustCompile(`(?i)\.(?:jpg|jpeg|gif|png)$`)

// Aggregator computes the three independent summaries over a full record sequence.
// Each pass is a plain count, so record order does not affect any result.
//
//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	ImageRatio(records []*models.LogRecord) models.ImageRatio
	BrowserSummary(records []*models.LogRecord) models.BrowserSummary
	HourlyTotals(records []*models.LogRecord) (models.HourlyTotals, error)
	// Summarize runs every pass and fails on the first DataError, so a summary is
	// either complete or absent.
	Summarize(ctx context.Context, records []*models.LogRecord) (*models.Summary, error)
}

type aggregator struct {
	classifier classifiers.BrowserClassifier
}

func NewAggregator(classifier classifiers.BrowserClassifier) Aggregator {
	return &aggregator{classifier: classifier}
}

func (a *aggregator) Summarize(ctx context.Context, records []*models.LogRecord) (*models.Summary, error) {
	if len(records) == 0 {
		return nil, errNoRecords()
	}

	hourly, err := a.HourlyTotals(records)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		ImageRatio:   a.ImageRatio(records),
		Browsers:     a.BrowserSummary(records),
		HourlyTotals: hourly,
	}
	a.observe(summary)

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Int(loggers.FieldRecords, len(records)).
		Int64("image_requests", summary.ImageRatio.ImageCount).
		Int("distinct_user_agents", len(summary.Browsers.UserAgentTally)).
		Int("hours", len(summary.HourlyTotals)).
		Msg("aggregated records")
	if len(summary.Browsers.Unclassified) > 0 {
		dict := loggers.Dict()
		for family, count := range summary.Browsers.Unclassified {
			dict = dict.Int64(family, count)
		}
		logger.Info().Dict("unclassified_user_agents", dict).Msg("user agents matching no browser rule")
	}

	return summary, nil
}

func (a *aggregator) ImageRatio(records []*models.LogRecord) models.ImageRatio {
	var ratio models.ImageRatio
	for _, record := range records {
		if imagePathPattern.MatchString(record.ResourcePath) {
			ratio.ImageCount++
		}
		ratio.TotalCount++
	}
	return ratio
}

func (a *aggregator) BrowserSummary(records []*models.LogRecord) models.BrowserSummary {
	summary := models.BrowserSummary{
		UserAgentTally:        make(map[string]int64),
		BrowserCategoryMatch:  make(map[string][]string),
		BrowserCategoryTotals: make(map[string]int64),
		Unclassified:          make(map[string]int64),
	}

	for _, record := range records {
		summary.UserAgentTally[record.UserAgent]++
	}

	// Classify each distinct agent once; sorted so matched-string lists are deterministic.
	userAgents := make([]string, 0, len(summary.UserAgentTally))
	for ua := range summary.UserAgentTally {
		userAgents = append(userAgents, ua)
	}
	sort.Strings(userAgents)

	for _, ua := range userAgents {
		count := summary.UserAgentTally[ua]
		names := a.classifier.Classify(ua)
		if len(names) == 0 {
			summary.Unclassified[a.family(ua)] += count
			continue
		}
		for _, name := range names {
			summary.BrowserCategoryMatch[name] = append(summary.BrowserCategoryMatch[name], ua)
			summary.BrowserCategoryTotals[name] += count
		}
	}

	return summary
}

func (a *aggregator) HourlyTotals(records []*models.LogRecord) (models.HourlyTotals, error) {
	totals := make(models.HourlyTotals)
	for i, record := range records {
		ts, err := models.ParseTimestamp(record.Timestamp)
		if err != nil {
			return nil, errInvalidTimestamp(i+1, record.Timestamp, err)
		}
		totals[models.HourBucket(ts)]++
	}
	return totals, nil
}

// family names the browser of an agent no rule matched, or returns it unchanged when unknown.
func (a *aggregator) family(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func (a *aggregator) observe(summary *models.Summary) {
	ratio := summary.ImageRatio
	metricImageRequestsTotal.WithLabelValues("image").Add(float64(ratio.ImageCount))
	metricImageRequestsTotal.WithLabelValues("other").Add(float64(ratio.TotalCount - ratio.ImageCount))

	for name, count := range summary.Browsers.BrowserCategoryTotals {
		metricBrowserHitsTotal.WithLabelValues(name).Add(float64(count))
	}
	var unclassified int64
	for _, count := range summary.Browsers.Unclassified {
		unclassified += count
	}
	if unclassified > 0 {
		metricBrowserHitsTotal.WithLabelValues(browserUnclassified).Add(float64(unclassified))
	}
}
