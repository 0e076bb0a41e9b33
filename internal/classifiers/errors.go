package classifiers

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeInvalidRule = "CLS_1000"
)

func errInvalidRule(name, pattern string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRule, fmt.Sprintf("browser rule %q has invalid pattern %q", name, pattern), cause)
}
