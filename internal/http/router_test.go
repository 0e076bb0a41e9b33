package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-report/internal/models"
	reportmocks "log-report/internal/reports/mocks"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_Reports(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := loggers.New("info", io.Discard)
	require.NoError(t, err)

	mockReportService := reportmocks.NewMockReportService(ctrl)
	router := NewRouter(mockReportService, logger)

	mockReportService.EXPECT().
		Generate(gomock.Any(), "http://example.com/ok.csv").
		Return(&models.Report{PopularBrowserMessage: "The popular browser is Firefox with # 1 hits."}, nil)
	mockReportService.EXPECT().
		Generate(gomock.Any(), "http://example.com/missing.csv").
		Return(nil, svcerrors.NewFetchError("FET_1001", "source answered with HTTP status 404", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports?url=http://example.com/ok.csv", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Firefox")

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports?url=http://example.com/missing.csv", nil)
	req.Header.Set(headerRequestID, "req-1")
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, ErrorResponse{
		RequestID:        "req-1",
		ErrorCategory:    "fetch",
		ErrorCode:        "FET_1001",
		ErrorDescription: "source answered with HTTP status 404",
	}, errorResponse)
}

func TestNewRouter_Metrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger, err := loggers.New("info", io.Discard)
	require.NoError(t, err)
	router := NewRouter(reportmocks.NewMockReportService(ctrl), logger)

	// one request so the http metrics have a sample
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "log_report_http_requests_total")
}
