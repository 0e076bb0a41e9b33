package fetchers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
)

// Fetcher downloads the raw CSV export behind a source URL. Failures are reported
// once and never retried.
//
//go:generate mockgen -source=fetcher.go -destination=./mocks/fetcher_mock.go -package=mocks
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"
)

var (
	// SchemesAll lets a fetcher read remote exports and local files.
	SchemesAll = []string{SchemeHTTP, SchemeHTTPS, SchemeFile}
	// SchemesRemote excludes local files; used behind the HTTP server.
	SchemesRemote = []string{SchemeHTTP, SchemeHTTPS}
)

type fetcher struct {
	client         *http.Client
	maxBytes       int64
	allowedSchemes map[string]bool
}

// NewFetcher returns a Fetcher that only accepts sources whose scheme is in allowedSchemes.
func NewFetcher(client *http.Client, maxBytes int64, allowedSchemes []string) Fetcher {
	allowed := make(map[string]bool, len(allowedSchemes))
	for _, scheme := range allowedSchemes {
		allowed[scheme] = true
	}
	return &fetcher{client: client, maxBytes: maxBytes, allowedSchemes: allowed}
}

func (f *fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, errUnsupportedSource(source, err)
	}
	if !f.allowedSchemes[u.Scheme] {
		return nil, errUnsupportedSource(source, nil)
	}

	start := time.Now()
	var body []byte
	switch u.Scheme {
	case SchemeHTTP, SchemeHTTPS:
		body, err = f.fetchHTTP(ctx, source)
	case SchemeFile:
		body, err = f.fetchFile(source, u.Path)
	default:
		return nil, errUnsupportedSource(source, nil)
	}
	metricFetchDuration.WithLabelValues(u.Scheme).Observe(time.Since(start).Seconds())

	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricFetchTotal.WithLabelValues(u.Scheme, svcErr.Code).Inc()
		}
		return nil, err
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldSource, source).
		Int("bytes", len(body)).
		Msg("fetched source")
	metricFetchTotal.WithLabelValues(u.Scheme, metrics.ValueNoError).Inc()
	return body, nil
}

func (f *fetcher) fetchHTTP(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errUnsupportedSource(source, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errSourceUnreachable(source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errBadStatus(source, resp.StatusCode)
	}

	return f.readWithLimit(source, resp.Body)
}

func (f *fetcher) fetchFile(source, path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errSourceUnreachable(source, err)
	}
	defer file.Close()

	return f.readWithLimit(source, file)
}

// readWithLimit reads up to maxBytes+1 bytes from r and fails if it exceeds maxBytes.
func (f *fetcher) readWithLimit(source string, r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, errSourceUnreachable(source, err)
	}
	if int64(len(buf)) > f.maxBytes {
		return nil, errPayloadTooLarge(source, f.maxBytes)
	}
	return buf, nil
}
