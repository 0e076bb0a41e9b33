package aggregators

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeInvalidTimestamp = "AGG_1000"
	codeNoRecords        = "AGG_1001"
)

// errInvalidTimestamp returns an error for a record whose timestamp is not "YYYY-MM-DD HH:MM:SS".
func errInvalidTimestamp(index int, timestamp string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeInvalidTimestamp, fmt.Sprintf("record %d has invalid timestamp %q", index, timestamp), cause)
}

// errNoRecords returns an error when there is nothing to aggregate; the image ratio would divide by zero.
func errNoRecords() *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeNoRecords, "log contains no records", nil)
}
