// Package config provides configuration management for vsdash.
//
// # Configuration Sources
//
// Configuration is assembled in layers, later layers winning:
//
//	1. Default values
//	2. YAML file (vsdash.yaml or configs/vsdash.yaml, or an explicit path)
//	3. .env file in the working directory
//	4. Environment variables
//	5. Command-line flags (applied by cmd/vsdash)
//
// # Environment Variables
//
// All environment variables follow the pattern VSDASH_<SECTION>_<FIELD>:
//
//	VSDASH_PIPELINE_DATA_DIR=data
//	VSDASH_PIPELINE_START_YEAR=2017
//	VSDASH_SERVER_PORT=8002
//	VSDASH_LOGGING_LEVEL=debug
//	VSDASH_TELEMETRY_METRICS_FILE=output/pipeline.prom
//
// # Path Management
//
// Paths resolves every source and output file from PipelineConfig:
//
//	paths := config.NewPaths(cfg.Pipeline)
//	paths.MergedCSV // output/merged_dataset.csv
package config
