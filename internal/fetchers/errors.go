package fetchers

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeSourceUnreachable = "FET_1000"
	codeBadStatus         = "FET_1001"
	codePayloadTooLarge   = "FET_1002"
	codeUnsupportedSource = "FET_1003"
)

// errSourceUnreachable returns an error when the source cannot be reached or read.
func errSourceUnreachable(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFetchError(codeSourceUnreachable, fmt.Sprintf("source <%s> is unreachable", source), cause)
}

// errBadStatus returns an error when the server answers with a non-2xx status.
func errBadStatus(source string, status int) *svcerrors.ServiceError {
	return svcerrors.NewFetchError(codeBadStatus, fmt.Sprintf("source <%s> answered with HTTP status %d", source, status), nil)
}

func errPayloadTooLarge(source string, maxBytes int64) *svcerrors.ServiceError {
	return svcerrors.NewFetchError(codePayloadTooLarge, fmt.Sprintf("source <%s> is larger than %d bytes", source, maxBytes), nil)
}

func errUnsupportedSource(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedSource, fmt.Sprintf("unsupported source <%s>: scheme is not allowed", source), cause)
}
