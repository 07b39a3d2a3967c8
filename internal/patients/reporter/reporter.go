package reporter

import (
	"context"
	"patientcleaner/internal/patients/service"
)

// Reporter consumes the outcome of one cleaning run.
type Reporter interface {
	Report(ctx context.Context, result *service.Result) error
}

var (
	_ Reporter = (*Console)(nil)
	_ Reporter = (*KafkaPublisher)(nil)
)
