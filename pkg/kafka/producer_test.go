package kafka

import (
	"context"
	"errors"
	"testing"

	kafka_config "patientcleaner/pkg/kafka/config"
	"patientcleaner/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func buildMessage(t *testing.T, key string, value any) Message {
	t.Helper()
	msg, err := NewMessage().WithKey(key).WithValue(value).WithEventType("patient.cleaned").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return msg
}

func TestNewProducer_Validation(t *testing.T) {
	cfg := &kafka_config.Config{Brokers: []string{"localhost:9092"}}

	tests := []struct {
		name  string
		cfg   *kafka_config.Config
		topic string
	}{
		{name: "nil config", cfg: nil, topic: "t"},
		{name: "no brokers", cfg: &kafka_config.Config{}, topic: "t"},
		{name: "empty topic", cfg: cfg, topic: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProducer(tt.cfg, tt.topic, logger.Nop()); err == nil {
				t.Error("expected an error")
			}
		})
	}

	p, err := NewProducer(cfg, "patients.cleaned", logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Topic() != "patients.cleaned" {
		t.Errorf("unexpected topic %s", p.Topic())
	}
	_ = p.Close()
}

func TestProducer_PublishBatch(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "patients.cleaned", logger.Nop())

	err := p.PublishBatch(context.Background(), []Message{
		buildMessage(t, "a", map[string]int{"age": 1}),
		{Key: "", Value: []byte(`{}`)},
		buildMessage(t, "b", map[string]int{"age": 2}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.written) != 2 {
		t.Fatalf("expected 2 messages written, got %d", len(w.written))
	}
	if string(w.written[1].Key) != "b" {
		t.Errorf("unexpected key %q", w.written[1].Key)
	}

	var eventType string
	for _, h := range w.written[0].Headers {
		if h.Key == HeaderEventType {
			eventType = string(h.Value)
		}
	}
	if eventType != "patient.cleaned" {
		t.Errorf("expected event type header, got %q", eventType)
	}
}

func TestProducer_Errors(t *testing.T) {
	writeErr := errors.New("broker down")

	tests := []struct {
		name    string
		writer  *fakeWriter
		msg     Message
		close   bool
		wantErr error
	}{
		{name: "empty key", writer: &fakeWriter{}, msg: Message{Value: []byte("x")}, wantErr: ErrEmptyKey},
		{name: "empty value", writer: &fakeWriter{}, msg: Message{Key: "k"}, wantErr: ErrEmptyValue},
		{name: "closed", writer: &fakeWriter{}, msg: Message{Key: "k", Value: []byte("x")}, close: true, wantErr: ErrProducerClosed},
		{name: "writer failure", writer: &fakeWriter{err: writeErr}, msg: Message{Key: "k", Value: []byte("x")}, wantErr: writeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProducer(tt.writer, "t", logger.Nop())
			if tt.close {
				_ = p.Close()
			}
			if err := p.Publish(context.Background(), tt.msg); !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProducer_EmptyBatch(t *testing.T) {
	p := newProducer(&fakeWriter{}, "t", logger.Nop())
	if err := p.PublishBatch(context.Background(), nil); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestProducer_CloseIsIdempotent(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t", logger.Nop())

	_ = p.Close()
	_ = p.Close()

	if w.closed != 1 {
		t.Errorf("expected writer to be closed once, got %d", w.closed)
	}
}

func TestMessageBuilder(t *testing.T) {
	msg, err := NewMessage().
		WithKey("John Smith|32|flu").
		WithValue(map[string]string{"name": "John Smith"}).
		WithCorrelationID("run-1").
		WithSource("patient-cleaner").
		WithSchemaVersion("1").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.GetEventID() == "" {
		t.Error("expected generated event id")
	}
	if msg.GetCorrelationID() != "run-1" {
		t.Errorf("unexpected correlation id %q", msg.GetCorrelationID())
	}
	if msg.Headers[HeaderTimestamp] == "" {
		t.Error("expected timestamp header")
	}

	var decoded map[string]string
	if err := msg.DecodeValue(&decoded); err != nil || decoded["name"] != "John Smith" {
		t.Errorf("unexpected payload %v (err %v)", decoded, err)
	}

	if _, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build(); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage for unencodable value, got %v", err)
	}
}
