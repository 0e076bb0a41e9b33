package fetchers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"log-report/internal/fetchers"
	"log-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "a.png,2021-01-01 08:00:00,Mozilla/5.0 Chrome/90\n"

func newFetcher(maxBytes int64) fetchers.Fetcher {
	return fetchers.NewFetcher(&http.Client{Timeout: 5 * time.Second}, maxBytes, fetchers.SchemesAll)
}

func requireServiceError(t *testing.T, err error, code, category string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
}

func TestFetch_HTTP_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/weblog.csv", r.URL.Path)
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	body, err := newFetcher(1024).Fetch(context.Background(), server.URL+"/weblog.csv")

	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))
}

func TestFetch_HTTP_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	source := server.URL + "/missing.csv"
	_, err := newFetcher(1024).Fetch(context.Background(), source)

	requireServiceError(t, err, "FET_1001", "fetch")
	assert.Contains(t, err.Error(), "<"+source+">")
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_HTTP_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	source := server.URL + "/weblog.csv"
	server.Close()

	_, err := newFetcher(1024).Fetch(context.Background(), source)

	requireServiceError(t, err, "FET_1000", "fetch")
}

func TestFetch_HTTP_TooLarge(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat(sampleCSV, 10)))
	}))
	defer server.Close()

	_, err := newFetcher(int64(len(sampleCSV))).Fetch(context.Background(), server.URL)

	requireServiceError(t, err, "FET_1002", "fetch")
}

func TestFetch_HTTP_ExactLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	body, err := newFetcher(int64(len(sampleCSV))).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Len(t, body, len(sampleCSV))
}

func TestFetch_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weblog.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	body, err := newFetcher(1024).Fetch(context.Background(), "file://"+path)

	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))
}

func TestFetch_FileMissing(t *testing.T) {
	t.Parallel()

	source := "file://" + filepath.Join(t.TempDir(), "missing.csv")
	_, err := newFetcher(1024).Fetch(context.Background(), source)

	requireServiceError(t, err, "FET_1000", "fetch")
}

func TestFetch_UnsupportedSource(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"ftp://example.com/weblog.csv", "weblog.csv", "://bad"} {
		t.Run(source, func(t *testing.T) {
			_, err := newFetcher(1024).Fetch(context.Background(), source)
			requireServiceError(t, err, "FET_1003", "invalid_argument")
		})
	}
}

func TestFetch_RemoteOnly(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "weblog.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	fetcher := fetchers.NewFetcher(&http.Client{Timeout: 5 * time.Second}, 1024, fetchers.SchemesRemote)

	body, err := fetcher.Fetch(context.Background(), server.URL+"/weblog.csv")
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))

	body, err = fetcher.Fetch(context.Background(), "file://"+path)
	assert.Nil(t, body)
	requireServiceError(t, err, "FET_1003", "invalid_argument")
}
