package config

const (
	EnvInputPath = "PATIENTS_INPUT_PATH"
	EnvMinAge    = "PATIENTS_MIN_AGE"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoCollection   = "MONGO_COLLECTION"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvKafkaTopic = "KAFKA_TOPIC"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
