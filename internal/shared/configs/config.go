package configs

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Nats   NatsConfig   `mapstructure:"nats" validate:"required"`
	Batch  BatchConfig  `mapstructure:"batch" validate:"required"`
	Ingest IngestConfig `mapstructure:"ingest" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// NatsConfig holds message-bus subscription configuration.
type NatsConfig struct {
	URL     string `mapstructure:"url" validate:"required"`
	Subject string `mapstructure:"subject" validate:"required"`
}

// BatchConfig holds batching-stage configuration. FlushIntervalSeconds is
// the timer half of the size-or-time flush race; LineBuffer and BatchBuffer
// size the bounded hand-off channels that give the pipeline backpressure.
type BatchConfig struct {
	Size                 int `mapstructure:"size" validate:"required,min=1"`
	FlushIntervalSeconds int `mapstructure:"flush_interval_seconds" validate:"required,min=1"`
	LineBuffer           int `mapstructure:"line_buffer" validate:"required,min=1"`
	BatchBuffer          int `mapstructure:"batch_buffer" validate:"required,min=1"`
}

// IngestConfig holds the reconnect policy for the inbound message bus.
type IngestConfig struct {
	RetryInitialMillis   int `mapstructure:"retry_initial_millis" validate:"required,min=1"`
	RetryMaxDelaySeconds int `mapstructure:"retry_max_delay_seconds" validate:"required,min=1"`
	RetryMaxAttempts     int `mapstructure:"retry_max_attempts" validate:"required,min=1"`
}
