package reporters

import (
	"log-report/internal/shared/svcerrors"
)

const (
	codeNoBrowser = "RPT_1000"
	codeNoRecords = "RPT_1001"
)

func errNoBrowser() *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeNoBrowser, "no user agent matched any browser rule", nil)
}

func errNoRecords() *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeNoRecords, "image ratio of zero requests is undefined", nil)
}
