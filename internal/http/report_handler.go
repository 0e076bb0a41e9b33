package http

import (
	"encoding/json"
	"net/http"

	"log-report/internal/reports"
	"log-report/internal/shared/validators"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type reportHandler struct {
	reportService reports.ReportService
	validate      *validators.Validate
}

func NewReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &reportHandler{
		reportService: reportService,
		validate:      validators.New(),
	}
}

// Handle processes GET /reports?url=<source> requests.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	source := sourceParam(r)
	if err := h.validate.Var(source, "required,"+validators.TagRemoteURL); err != nil {
		return errInvalidSource(source)
	}

	report, err := h.reportService.Generate(r.Context(), source)
	if err != nil {
		return err
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(report)
}
