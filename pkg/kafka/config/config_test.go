package kafka_config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Brokers) != 1 || cfg.Brokers[0] != DefaultKafkaBrokers {
		t.Errorf("unexpected brokers %v", cfg.Brokers)
	}
	if cfg.ProducerCompression != DefaultProducerCompression {
		t.Errorf("unexpected compression %s", cfg.ProducerCompression)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "kafka-1:9092, kafka-2:9092")
	t.Setenv(EnvKafkaProducerBatchTimeout, "50ms")
	t.Setenv(EnvKafkaProducerCompression, "zstd")
	t.Setenv(EnvKafkaProducerAsync, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Brokers) != 2 || cfg.Brokers[1] != "kafka-2:9092" {
		t.Errorf("expected trimmed brokers, got %v", cfg.Brokers)
	}
	if cfg.ProducerBatchTimeout != 50*time.Millisecond {
		t.Errorf("unexpected batch timeout %s", cfg.ProducerBatchTimeout)
	}
	if !cfg.ProducerAsync {
		t.Error("expected async producer")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		errContain string
	}{
		{
			name:       "empty broker",
			cfg:        Config{Brokers: []string{""}, ProducerMaxAttempts: 1, ProducerBatchTimeout: time.Second, ProducerCompression: "none", ProducerRequireAcks: 1},
			errContain: "Broker 0 cannot be empty",
		},
		{
			name:       "bad compression",
			cfg:        Config{Brokers: []string{"k:9092"}, ProducerMaxAttempts: 1, ProducerBatchTimeout: time.Second, ProducerCompression: "brotli", ProducerRequireAcks: 1},
			errContain: "ProducerCompression must be one of",
		},
		{
			name:       "bad acks",
			cfg:        Config{Brokers: []string{"k:9092"}, ProducerMaxAttempts: 1, ProducerBatchTimeout: time.Second, ProducerCompression: "gzip", ProducerRequireAcks: 2},
			errContain: "ProducerRequireAcks must be -1, 0, or 1",
		},
		{
			name:       "zero attempts",
			cfg:        Config{Brokers: []string{"k:9092"}, ProducerBatchTimeout: time.Second, ProducerCompression: "gzip", ProducerRequireAcks: -1},
			errContain: "ProducerMaxAttempts must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errContain) {
				t.Errorf("expected error containing %q, got %v", tt.errContain, err)
			}
		})
	}
}
