package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-report/internal/consoles"
	consolemocks "log-report/internal/consoles/mocks"
	"log-report/internal/models"
	"log-report/internal/shared/configs"
	"log-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const weblogCSV = `/images/a.png,2021-01-01 08:00:00,Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/90.0 Safari/537.36
/index.html,2021-01-01 08:30:00,Mozilla/5.0 (X11; Linux x86_64; rv:88.0) Gecko/20100101 Firefox/88.0
/images/b.JPG,2021-01-01 09:00:00,Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/90.0 Safari/537.36
/about.html,2021-01-01 13:15:00,Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1)
`

func testConfig(t *testing.T) *configs.Config {
	t.Helper()
	dir := t.TempDir()
	return &configs.Config{
		Log: configs.LogConfig{
			Level:     "info",
			ErrorFile: filepath.Join(dir, "errors.log"),
		},
		Fetch: configs.FetchConfig{Timeout: 5, MaxBytes: 1 << 20},
		Metadata: configs.MetadataConfig{
			Enabled:  true,
			RootDir:  dir,
			FileName: "browser-meta.json",
			Format:   "json",
		},
		Metrics: configs.MetricsConfig{TextfilePath: filepath.Join(dir, "log_report.prom")},
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      60,
			IdleTimeout:       60,
		},
	}
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weblog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return "file://" + path
}

func TestApp_Run_PrintsAllAnswers(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	application, err := New(cfg, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	source := writeSource(t, weblogCSV)
	err = application.Run(context.Background(), source, consoles.NewConsole(strings.NewReader(""), &out), false)
	require.NoError(t, err)
	require.NoError(t, application.Close())

	got := out.String()
	assert.Contains(t, got, "Answer: Image requests account for 50.0% of all requests.")
	// Chrome, Explorer and Firefox are present; alphabetical choice wins over counts
	assert.Contains(t, got, "Answer: The popular browser is Chrome with # 2 hits.")
	assert.Contains(t, got, "Hour 08 has 2 hits.\nHour 09 has 1 hits.\nHour 13 has 1 hits.\n")

	data, err := os.ReadFile(filepath.Join(cfg.Metadata.RootDir, cfg.Metadata.FileName))
	require.NoError(t, err)
	var snapshot map[string]map[string]int64
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Equal(t, map[string]int64{"Chrome": 2, "Explorer": 1, "Firefox": 1}, snapshot["browserSum"])
	assert.Len(t, snapshot["browserTypeSum"], 3)

	metricsText, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), "log_report_report_generated_total")
}

func TestApp_Run_Interactive(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(t), io.Discard)
	require.NoError(t, err)
	defer application.Close()

	var out bytes.Buffer
	source := writeSource(t, weblogCSV)
	console := consoles.NewConsole(strings.NewReader("2\nq\n"), &out)

	require.NoError(t, application.Run(context.Background(), source, console, true))

	got := out.String()
	assert.Contains(t, got, "Answer: The popular browser is Chrome with # 2 hits.")
	assert.NotContains(t, got, "Image requests account")
}

func TestApp_Run_Failure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := testConfig(t)
	var logs bytes.Buffer
	application, err := New(cfg, &logs)
	require.NoError(t, err)

	var out bytes.Buffer
	source := server.URL + "/missing.csv"
	err = application.Run(context.Background(), source, consoles.NewConsole(strings.NewReader(""), &out), false)
	require.NoError(t, application.Close())

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "FET_1001", svcErr.Code)

	assert.Equal(t,
		"Something went wrong, you entered in <"+source+">, please check your url param for errors\n",
		out.String())

	errorLog, err := os.ReadFile(cfg.Log.ErrorFile)
	require.NoError(t, err)
	assert.Contains(t, string(errorLog), "Error processing <"+source+">")
	assert.NotContains(t, string(errorLog), "report generated")
	assert.Contains(t, logs.String(), `"run_id"`)

	_, err = os.Stat(filepath.Join(cfg.Metadata.RootDir, cfg.Metadata.FileName))
	assert.True(t, os.IsNotExist(err), "failed run must not write metadata")
}

func TestApp_Run_MetadataDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Metadata.Enabled = false
	cfg.Log.ErrorFile = ""
	application, err := New(cfg, io.Discard)
	require.NoError(t, err)
	defer application.Close()

	source := writeSource(t, weblogCSV)
	err = application.Run(context.Background(), source, consoles.NewConsole(strings.NewReader(""), io.Discard), false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.Metadata.RootDir, cfg.Metadata.FileName))
	assert.True(t, os.IsNotExist(err))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(cfg *configs.Config)
	}{
		{
			name:   "bad log level",
			mutate: func(cfg *configs.Config) { cfg.Log.Level = "loud" },
		},
		{
			name: "bad browser rule",
			mutate: func(cfg *configs.Config) {
				cfg.Classifier.Rules = []configs.BrowserRuleConfig{{Name: "Broken", Pattern: "("}}
			},
		},
		{
			name:   "bad metadata format",
			mutate: func(cfg *configs.Config) { cfg.Metadata.Format = "xml" },
		},
		{
			name:   "unwritable error log",
			mutate: func(cfg *configs.Config) { cfg.Log.ErrorFile = filepath.Join(t.TempDir(), "missing", "errors.log") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t)
			tt.mutate(cfg)

			application, err := New(cfg, io.Discard)

			assert.Error(t, err)
			assert.Nil(t, application)
		})
	}
}

func TestApp_Server_RejectsLocalFiles(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	application, err := New(cfg, io.Discard)
	require.NoError(t, err)
	defer application.Close()

	source := writeSource(t, weblogCSV)
	req := httptest.NewRequest(http.MethodGet, "/reports?url="+source, nil)
	rr := httptest.NewRecorder()

	application.server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_1000", body["errorCode"])
	assert.NotContains(t, rr.Body.String(), "Image requests account")

	_, err = os.Stat(filepath.Join(cfg.Metadata.RootDir, cfg.Metadata.FileName))
	assert.True(t, os.IsNotExist(err), "rejected request must not write metadata")
}

func TestNew_LogsBrowserRules(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Log.Level = "debug"
	cfg.Log.ErrorFile = ""
	var logs bytes.Buffer
	application, err := New(cfg, &logs)
	require.NoError(t, err)
	defer application.Close()

	assert.Contains(t, logs.String(), `"browser_rules":["Safari","Explorer","Firefox","Chrome"]`)
}

func TestApp_Run_ConsoleDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		interactive bool
		expect      func(console *consolemocks.MockConsole)
	}{
		{
			name:        "print all",
			interactive: false,
			expect: func(console *consolemocks.MockConsole) {
				console.EXPECT().PrintAll(gomock.AssignableToTypeOf(&models.Report{})).Return(nil)
			},
		},
		{
			name:        "interactive",
			interactive: true,
			expect: func(console *consolemocks.MockConsole) {
				console.EXPECT().Interact(gomock.AssignableToTypeOf(&models.Report{})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			application, err := New(testConfig(t), io.Discard)
			require.NoError(t, err)
			defer application.Close()

			console := consolemocks.NewMockConsole(ctrl)
			tt.expect(console)

			require.NoError(t, application.Run(context.Background(), writeSource(t, weblogCSV), console, tt.interactive))
		})
	}
}

func TestApp_Run_FailurePrintError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	application, err := New(testConfig(t), io.Discard)
	require.NoError(t, err)
	defer application.Close()

	source := writeSource(t, "")
	printErr := errors.New("broken pipe")
	console := consolemocks.NewMockConsole(ctrl)
	console.EXPECT().PrintFailure(source).Return(printErr)

	err = application.Run(context.Background(), source, console, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, printErr)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "AGG_1001", svcErr.Code)
}
