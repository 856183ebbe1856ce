package ingest

import (
	"fmt"

	"logmetrics/internal/shared/svcerrors"
)

const (
	codeTransportUnavailable = "ING_9000"
)

// errTransportUnavailable returns an error when the message bus stays
// unreachable past the retry budget.
func errTransportUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeTransportUnavailable, "message bus unavailable", fmt.Errorf("transportUnavailable: %w", cause))
}
