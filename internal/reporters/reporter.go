package reporters

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"log-report/internal/models"
)

// Reporter renders aggregation results into stable sentences. It holds no state.
//
//go:generate mockgen -source=reporter.go -destination=./mocks/reporter_mock.go -package=mocks
type Reporter interface {
	ImageRatioMessage(ratio models.ImageRatio) (string, error)
	// PopularBrowserMessage reports the alphabetically first browser present in totals.
	// Counts do not take part in the choice.
	PopularBrowserMessage(totals map[string]int64) (string, error)
	// HourlyMessages returns one sentence per hour present, ascending by hour.
	HourlyMessages(totals models.HourlyTotals) []string
	Render(summary *models.Summary) (*models.Report, error)
}

type reporter struct{}

func NewReporter() Reporter {
	return &reporter{}
}

func (r *reporter) Render(summary *models.Summary) (*models.Report, error) {
	imageMsg, err := r.ImageRatioMessage(summary.ImageRatio)
	if err != nil {
		return nil, err
	}
	browserMsg, err := r.PopularBrowserMessage(summary.Browsers.BrowserCategoryTotals)
	if err != nil {
		return nil, err
	}
	return &models.Report{
		ImageRatioMessage:     imageMsg,
		PopularBrowserMessage: browserMsg,
		HourlyMessages:        r.HourlyMessages(summary.HourlyTotals),
	}, nil
}

func (r *reporter) ImageRatioMessage(ratio models.ImageRatio) (string, error) {
	if ratio.TotalCount == 0 {
		return "", errNoRecords()
	}
	percentage := float64(ratio.ImageCount) / float64(ratio.TotalCount) * 100
	return fmt.Sprintf("Image requests account for %s%% of all requests.", formatFloat(percentage)), nil
}

func (r *reporter) PopularBrowserMessage(totals map[string]int64) (string, error) {
	if len(totals) == 0 {
		return "", errNoBrowser()
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	name := names[0]
	return fmt.Sprintf("The popular browser is %s with # %d hits.", name, totals[name]), nil
}

func (r *reporter) HourlyMessages(totals models.HourlyTotals) []string {
	hours := make([]string, 0, len(totals))
	for hour := range totals {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	messages := make([]string, 0, len(hours))
	for _, hour := range hours {
		messages = append(messages, fmt.Sprintf("Hour %s has %d hits.", hour, totals[hour]))
	}
	return messages
}

// formatFloat prints the shortest representation that round-trips, always with a
// fractional part ("0.0", "50.0") and in exponent form outside [1e-4, 1e16).
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
