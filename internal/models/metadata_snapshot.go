package models

// MetadataSnapshot is the persisted browser metadata document.
//
// Example JSON:
//
//	{
//	    "browserTypeSum": {
//	        "Mozilla/5.0 Chrome/90": 2,
//	        "Mozilla/5.0 Firefox/88": 1
//	    },
//	    "browserSum": {
//	        "Chrome": 2,
//	        "Firefox": 1
//	    }
//	}
type MetadataSnapshot struct {
	BrowserTypeSum map[string]int64 `json:"browserTypeSum" yaml:"browserTypeSum"`
	BrowserSum     map[string]int64 `json:"browserSum" yaml:"browserSum"`
}

// NewMetadataSnapshot builds the snapshot from a browser summary.
func NewMetadataSnapshot(browsers BrowserSummary) *MetadataSnapshot {
	return &MetadataSnapshot{
		BrowserTypeSum: browsers.UserAgentTally,
		BrowserSum:     browsers.BrowserCategoryTotals,
	}
}
