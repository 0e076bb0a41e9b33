package reports

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

const (
	codeInternalMetadataStoreFailed = "RUN_9000"
)

// errInternalMetadataStoreFailed returns an error when the metadata snapshot cannot be written.
func errInternalMetadataStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMetadataStoreFailed, fmt.Errorf("metadataStoreFailed: %w", cause))
}
