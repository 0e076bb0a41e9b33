package reports

import (
	"context"
	"time"

	"log-report/internal/aggregators"
	"log-report/internal/fetchers"
	"log-report/internal/models"
	"log-report/internal/parsers"
	"log-report/internal/reporters"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
	"log-report/internal/stores"
)

// ReportService runs one report: fetch, parse, aggregate, snapshot, render.
// Any failure aborts the run and no partial report is returned.
//
//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	Generate(ctx context.Context, source string) (*models.Report, error)
}

type reportService struct {
	fetcher       fetchers.Fetcher
	parser        parsers.RecordParser
	aggregator    aggregators.Aggregator
	reporter      reporters.Reporter
	metadataStore stores.MetadataStore
}

func NewReportService(
	fetcher fetchers.Fetcher,
	parser parsers.RecordParser,
	aggregator aggregators.Aggregator,
	reporter reporters.Reporter,
	metadataStore stores.MetadataStore,
) ReportService {
	return &reportService{
		fetcher:       fetcher,
		parser:        parser,
		aggregator:    aggregator,
		reporter:      reporter,
		metadataStore: metadataStore,
	}
}

func (s *reportService) Generate(ctx context.Context, source string) (*models.Report, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldSource, source).Msg("started generating report")

	start := time.Now()
	report, err := s.generate(ctx, source)

	errorCode := metrics.ValueNoError
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		errorCode = svcErr.Code
		err = svcErr
	}
	metricReportGeneratedTotal.WithLabelValues(errorCode).Inc()
	metricReportDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) generate(ctx context.Context, source string) (*models.Report, error) {
	logger := loggers.Ctx(ctx)

	payload, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	records, err := s.parser.Parse(payload)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int(loggers.FieldRecords, len(records)).Msg("parsed records")

	summary, err := s.aggregator.Summarize(ctx, records)
	if err != nil {
		return nil, err
	}

	path, err := s.metadataStore.Put(ctx, models.NewMetadataSnapshot(summary.Browsers))
	if err != nil {
		return nil, errInternalMetadataStoreFailed(err)
	}
	if path != "" {
		logger.Info().Str("path", path).Msg("metadata snapshot written")
	}

	return s.reporter.Render(summary)
}
