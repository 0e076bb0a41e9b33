package models

// ImageRatio counts image requests against all requests.
type ImageRatio struct {
	ImageCount int64 `json:"imageCount"`
	TotalCount int64 `json:"totalCount"`
}

// BrowserSummary is the result of the browser totals pass.
//
// Example:
//
//	UserAgentTally:        {"Mozilla/5.0 Chrome/90": 2, "Mozilla/5.0 Firefox/88": 1, "curl/7.88.1": 4}
//	BrowserCategoryMatch:  {"Chrome": ["Mozilla/5.0 Chrome/90"], "Firefox": ["Mozilla/5.0 Firefox/88"]}
//	BrowserCategoryTotals: {"Chrome": 2, "Firefox": 1}
//	Unclassified:          {"curl": 4}
//
// Rules without any matching user agent are absent from BrowserCategoryMatch and
// BrowserCategoryTotals rather than present with zero.
type BrowserSummary struct {
	UserAgentTally        map[string]int64    `json:"userAgentTally"`
	BrowserCategoryMatch  map[string][]string `json:"browserCategoryMatch"`
	BrowserCategoryTotals map[string]int64    `json:"browserCategoryTotals"`
	// Unclassified counts user agents matching no rule, keyed by parsed browser family.
	Unclassified map[string]int64 `json:"unclassified"`
}

// HourlyTotals maps a two-digit hour of day ("00".."23") to its request count.
type HourlyTotals map[string]int64

// Summary bundles the three independent aggregation results of one run.
type Summary struct {
	ImageRatio   ImageRatio     `json:"imageRatio"`
	Browsers     BrowserSummary `json:"browsers"`
	HourlyTotals HourlyTotals   `json:"hourlyTotals"`
}
