package models

// Report holds the rendered answers of one run, in presentation order.
type Report struct {
	ImageRatioMessage     string   `json:"imageRatioMessage"`
	PopularBrowserMessage string   `json:"popularBrowserMessage"`
	HourlyMessages        []string `json:"hourlyMessages"`
}
