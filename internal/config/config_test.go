package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vsdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults without file or env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8002, cfg.Server.Port)
				assert.Equal(t, 2017, cfg.Pipeline.StartYear)
				assert.Equal(t, 2021, cfg.Pipeline.EndYear)
				assert.Equal(t, ";", cfg.Pipeline.StreamsDelimiter)
				assert.Equal(t, ",", cfg.Pipeline.EruptionsDelimiter)
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
				assert.True(t, cfg.Pipeline.WriteWorkbook)
			},
		},
		{
			name: "file overrides defaults",
			file: "server:\n  port: 9000\n  read_timeout: 5s\npipeline:\n  output_dir: out\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "out", cfg.Pipeline.OutputDir)
				assert.Equal(t, "data", cfg.Pipeline.DataDir)
			},
		},
		{
			name: "env overrides file",
			file: "server:\n  port: 9000\n",
			env: map[string]string{
				"VSDASH_SERVER_PORT":         "9100",
				"VSDASH_PIPELINE_START_YEAR": "2018",
				"VSDASH_LOGGING_LEVEL":       "debug",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9100, cfg.Server.Port)
				assert.Equal(t, 2018, cfg.Pipeline.StartYear)
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"VSDASH_SERVER_PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "end year before start year",
			file:    "pipeline:\n  start_year: 2021\n  end_year: 2017\n",
			wantErr: true,
		},
		{
			name:    "multi character delimiter",
			env:     map[string]string{"VSDASH_PIPELINE_STREAMS_DELIMITER": ";;"},
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "server: [port",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VSDASH_SERVER_PORT=8123\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("VSDASH_SERVER_PORT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestValidate_NormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "warning"
	cfg.Logging.Output = "both"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "logs/vsdash.log", cfg.Logging.FilePath)
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, ';', Delimiter(";"))
	assert.Equal(t, '\t', Delimiter("\t"))
	assert.Equal(t, ',', Delimiter(""))
}
