package reporter

import (
	"context"
	"fmt"
	"patientcleaner/internal/patients/service"
	"patientcleaner/pkg/kafka"
	"patientcleaner/pkg/logger"
)

const (
	EventPatientCleaned = "patient.cleaned"
	SchemaVersion       = "1"
)

type Publisher interface {
	PublishBatch(ctx context.Context, messages []kafka.Message) error
}

// KafkaPublisher emits one event per cleaned record, keyed by its identity key
// and correlated by the run id.
type KafkaPublisher struct {
	publisher Publisher
	source    string
	log       *logger.Logger
}

func NewKafkaPublisher(publisher Publisher, source string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		publisher: publisher,
		source:    source,
		log:       log,
	}
}

func (k *KafkaPublisher) Report(ctx context.Context, result *service.Result) error {
	if result == nil || len(result.Patients) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(result.Patients))
	for _, p := range result.Patients {
		msg, err := kafka.NewMessage().
			WithKey(p.Key().String()).
			WithValue(p).
			WithEventType(EventPatientCleaned).
			WithCorrelationID(result.Report.RunID).
			WithSchemaVersion(SchemaVersion).
			WithSource(k.source).
			Build()
		if err != nil {
			return fmt.Errorf("build %s event: %w", EventPatientCleaned, err)
		}
		messages = append(messages, msg)
	}

	if err := k.publisher.PublishBatch(ctx, messages); err != nil {
		return err
	}

	k.log.Info("Cleaned patient records published",
		"run_id", result.Report.RunID,
		"count", len(messages),
	)
	return nil
}
