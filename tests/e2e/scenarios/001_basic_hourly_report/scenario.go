package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match expectedReport.
const (
	totalEntries = 64000
)

var (
	hours      = []string{"18", "19", "20", "21"}
	paths      = []string{"/", "/images/logo.png", "/careers", "/images/banner.JPG"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}

	expectedReport = report{
		ImageRatioMessage:     "Image requests account for 50.0% of all requests.",
		PopularBrowserMessage: "The popular browser is Chrome with # 16000 hits.",
		HourlyMessages: []string{
			"Hour 18 has 16000 hits.",
			"Hour 19 has 16000 hits.",
			"Hour 20 has 16000 hits.",
			"Hour 21 has 16000 hits.",
		},
	}
)

// ### End - fixed configs

type report struct {
	ImageRatioMessage     string   `json:"imageRatioMessage"`
	PopularBrowserMessage string   `json:"popularBrowserMessage"`
	HourlyMessages        []string `json:"hourlyMessages"`
}

// main runs the e2e scenario: 001_basic_hourly_report
//
// It writes a deterministic CSV export of 64,000 requests spread evenly over four hours,
// four paths (two of them images) and four user agents, serves it from a local file
// server, then asks a running `log-report serve` instance for the report of that URL
// several times in parallel.
//
// Expected results:
//   - Every request answers 200 with the same report (runs share no state)
//   - Half of all requests are images
//   - Chrome is reported as the popular browser with 16,000 hits; Googlebot and curl
//     match no browser rule
//   - Each hour holds 16,000 hits
//   - A missing file answers 502 with error code FET_1001 (the file server answers 404)
//   - A file:// source answers 400 with error code HTTP_1000
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the log-report server
	dateUTC := "2025-12-28"            // Date used for generating timestamps
	requests := 8                      // Number of report requests to send
	parallel := 2                      // Number of concurrent report requests
	workDir := ".tmp/e2e"              // Directory for the generated CSV, relative to project root

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	dataDir := filepath.Join(projectRoot, workDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create work directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_basic_hourly_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("REQUESTS: %d\n", requests)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	csvPath := filepath.Join(dataDir, "weblog.csv")
	fmt.Printf("Writing %d entries to %s...\n", totalEntries, csvPath)
	if err := writeCSV(csvPath, dateUTC); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write CSV: %v\n", err)
		os.Exit(1)
	}
	fileServer := httptest.NewServer(http.FileServer(http.Dir(dataDir)))
	defer fileServer.Close()
	source := fileServer.URL + "/weblog.csv"
	fmt.Printf("Serving %s at %s\n", csvPath, source)

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error
	var okRequests int64

	for i := 1; i <= requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(index int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			err := checkReport(baseURL, source)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("request %d: %w", index, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Request %d failed: %v\n", index, err)
				return
			}
			atomic.AddInt64(&okRequests, 1)
			fmt.Printf("Request %d completed\n", index)
		}(i)
	}
	wg.Wait()

	if err := checkErrorResponse(baseURL, fileServer.URL+"/missing.csv", http.StatusBadGateway, "FET_1001"); err != nil {
		failures = append(failures, err)
		fmt.Fprintf(os.Stderr, "ERROR: Missing source check failed: %v\n", err)
	}
	if err := checkErrorResponse(baseURL, "file://"+csvPath, http.StatusBadRequest, "HTTP_1000"); err != nil {
		failures = append(failures, err)
		fmt.Fprintf(os.Stderr, "ERROR: Local file check failed: %v\n", err)
	}

	fmt.Println()
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d checks failed\n", len(failures))
		fileServer.Close()
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Successful report requests: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from inside the project")
		}
		dir = parent
	}
}

// writeCSV cycles through every hour/path/agent combination so each of the 64 buckets
// gets the same number of rows.
func writeCSV(path, dateUTC string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i := 0; i < totalEntries; i++ {
		bucket := i % 64
		round := i / 64

		hour := hours[bucket/16]
		combo := bucket % 16
		timestamp := fmt.Sprintf("%s %s:%02d:%02d", dateUTC, hour, round%60, (round/60)%60)

		if err := w.Write([]string{paths[combo/4], timestamp, userAgents[combo%4]}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func getReport(baseURL, source string) (int, []byte, error) {
	resp, err := http.Get(baseURL + "/reports?url=" + url.QueryEscape(source))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func checkReport(baseURL, source string) error {
	status, body, err := getReport(baseURL, source)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", status, body)
	}

	var got report
	if err := json.Unmarshal(body, &got); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}
	if !reflect.DeepEqual(got, expectedReport) {
		return fmt.Errorf("unexpected report:\n got: %+v\nwant: %+v", got, expectedReport)
	}
	return nil
}

func checkErrorResponse(baseURL, source string, wantStatus int, wantCode string) error {
	status, body, err := getReport(baseURL, source)
	if err != nil {
		return err
	}
	if status != wantStatus {
		return fmt.Errorf("source %s: unexpected status %d: %s", source, status, body)
	}

	var errorResponse struct {
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return fmt.Errorf("failed to decode error response: %w", err)
	}
	if errorResponse.ErrorCode != wantCode {
		return fmt.Errorf("source %s: unexpected error code %q, want %q", source, errorResponse.ErrorCode, wantCode)
	}
	return nil
}
