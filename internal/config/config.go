package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix namespaces every environment variable, e.g. VSDASH_SERVER_PORT.
const EnvPrefix = "VSDASH"

// Config represents the complete application configuration
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline" envconfig:"PIPELINE"`
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// PipelineConfig describes the two sources, the output directory and the
// inclusive year window applied to both datasets.
type PipelineConfig struct {
	DataDir            string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	OutputDir          string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	EruptionsFile      string `yaml:"eruptions_file" envconfig:"ERUPTIONS_FILE" validate:"required"`
	StreamsFile        string `yaml:"streams_file" envconfig:"STREAMS_FILE" validate:"required"`
	EruptionsDelimiter string `yaml:"eruptions_delimiter" envconfig:"ERUPTIONS_DELIMITER" validate:"len=1"`
	StreamsDelimiter   string `yaml:"streams_delimiter" envconfig:"STREAMS_DELIMITER" validate:"len=1"`
	StartYear          int    `yaml:"start_year" envconfig:"START_YEAR" validate:"min=1"`
	EndYear            int    `yaml:"end_year" envconfig:"END_YEAR" validate:"gtefield=StartYear"`
	WriteWorkbook      bool   `yaml:"write_workbook" envconfig:"WRITE_WORKBOOK"`
}

// ServerConfig contains dashboard HTTP server configuration
type ServerConfig struct {
	Host            string          `yaml:"host" envconfig:"HOST"`
	Port            int             `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	DashboardDir    string          `yaml:"dashboard_dir" envconfig:"DASHBOARD_DIR" validate:"required"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TelemetryConfig controls stage tracing and the pipeline metrics textfile.
type TelemetryConfig struct {
	EnableTracing bool   `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration. Defaults come first, then the YAML file
// (configFile, or the first well-known location that exists), then .env and
// process environment variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys absent from the file
// keep their current value.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks struct constraints and normalizes logging fields.
func (c *Config) Validate() error {
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/vsdash.log"
	}

	if err := validator.New().Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"vsdash.yaml",
		"configs/vsdash.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			DataDir:            "data",
			OutputDir:          "output",
			EruptionsFile:      "eruptions.csv",
			StreamsFile:        "spotify-top-200-dataset.csv",
			EruptionsDelimiter: ",",
			StreamsDelimiter:   ";",
			StartYear:          2017,
			EndYear:            2021,
			WriteWorkbook:      true,
		},
		Server: ServerConfig{
			Port:            8002,
			DashboardDir:    "dashboard",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "console",
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}

// Delimiter returns the first rune of a one-character delimiter setting.
func Delimiter(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}
