package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"log-report/internal/models"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
)

const (
	colResourcePath = 0
	colTimestamp    = 1
	colUserAgent    = 2

	minFields = 3
)

// RecordParser turns a headerless CSV export into LogRecords, one per row, in row order.
// Columns are used by position and extra columns are ignored. An empty line is a row
// without fields and fails like any other short row; the final line break is optional.
//
//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	Parse(payload []byte) ([]*models.LogRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) Parse(payload []byte) ([]*models.LogRecord, error) {
	records, err := p.parse(payload)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRecordsParsedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}
	metricRecordsParsedTotal.WithLabelValues(metrics.ValueNoError).Add(float64(len(records)))
	return records, nil
}

func (p *recordParser) parse(payload []byte) ([]*models.LogRecord, error) {
	if !utf8.Valid(payload) {
		return nil, errInvalidEncoding()
	}

	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1
	// quotes inside unquoted fields are kept literally, common in user agents
	reader.LazyQuotes = true

	var records []*models.LogRecord
	for row := 1; ; row++ {
		// encoding/csv skips empty lines; each one is a row without fields
		if startsWithEmptyLine(payload[reader.InputOffset():]) {
			return nil, errShortRow(row, 0)
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errMalformedCSV(err)
		}
		if len(fields) < minFields {
			return nil, errShortRow(row, len(fields))
		}

		records = append(records, &models.LogRecord{
			ResourcePath: fields[colResourcePath],
			Timestamp:    fields[colTimestamp],
			UserAgent:    fields[colUserAgent],
		})
	}

	return records, nil
}

func startsWithEmptyLine(rest []byte) bool {
	return bytes.HasPrefix(rest, []byte("\n")) || bytes.HasPrefix(rest, []byte("\r\n"))
}
