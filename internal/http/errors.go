package http

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeInvalidSource = "HTTP_1000"
)

// errInvalidSource returns an error when the url query parameter is missing or not a log source URL.
func errInvalidSource(source string) *svcerrors.ServiceError {
	if source == "" {
		return svcerrors.NewInvalidArgumentError(codeInvalidSource, "query parameter url is required", nil)
	}
	return svcerrors.NewInvalidArgumentError(codeInvalidSource,
		fmt.Sprintf("query parameter url %q must be an absolute http or https URL", source), nil)
}
