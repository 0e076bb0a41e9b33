package parsers

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeInvalidEncoding = "PAR_1000"
	codeMalformedCSV    = "PAR_1001"
	codeShortRow        = "PAR_1002"
)

func errInvalidEncoding() *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeInvalidEncoding, "csv payload is not valid UTF-8", nil)
}

func errMalformedCSV(cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeMalformedCSV, fmt.Sprintf("malformed csv: %v", cause), cause)
}

// errShortRow returns an error for a row that lacks one of the three positional fields.
func errShortRow(row, fields int) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeShortRow, fmt.Sprintf("row %d has %d fields, want at least %d", row, fields, minFields), nil)
}
