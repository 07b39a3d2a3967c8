package config

import (
	"path/filepath"
	"time"
)

var DefaultInputPath = filepath.Join("data", "raw", "patients.json")

const (
	DefaultMinAge = 18

	DefaultLogLevel = "info"

	DefaultMongoDatabaseName = "patients"
	DefaultMongoCollection   = "raw_patients"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 5 * 1024 * 1024 // 5MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
