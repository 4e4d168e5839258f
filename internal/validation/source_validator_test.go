package validation

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vsdash/internal/errors"
	"vsdash/internal/shared/testutil"
)

func TestSourceValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		errorContains string
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "eruptions.csv")
				require.NoError(t, os.WriteFile(path, []byte("start_year\n2020\n"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:       true,
			errorContains: "does not exist",
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:       true,
			errorContains: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSourceValidator(slog.New(slog.DiscardHandler))
			err := v.ValidateFile(tt.setupFunc(t))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestSourceValidator_ValidateSources(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "eruptions.csv")
	require.NoError(t, os.WriteFile(present, []byte("start_year\n"), 0644))

	v := NewSourceValidator(slog.New(slog.DiscardHandler))

	t.Run("all present", func(t *testing.T) {
		assert.NoError(t, v.ValidateSources(Source{Dataset: "volcano", Path: present}))
	})

	t.Run("every missing source is reported", func(t *testing.T) {
		err := v.ValidateSources(
			Source{Dataset: "volcano", Path: filepath.Join(dir, "a.csv")},
			Source{Dataset: "spotify", Path: filepath.Join(dir, "b.csv")},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
		assert.Contains(t, err.Error(), "a.csv")
		assert.Contains(t, err.Error(), "b.csv")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrTypeSource, appErr.Type)
	})
}

func TestSourceValidator_WarnsOnExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.txt")
	require.NoError(t, os.WriteFile(path, []byte("week\n"), 0644))

	logger, capture := testutil.NewTestLogger(t)
	err := NewSourceValidator(logger).ValidateSources(Source{Dataset: "spotify", Path: path})

	assert.NoError(t, err)
	r := testutil.AssertLogged(t, capture, slog.LevelWarn, "Source file does not have a .csv extension")
	assert.Equal(t, ".txt", r.Attrs["extension"])
}

func TestSourceValidator_ValidateOutputDirectory(t *testing.T) {
	v := NewSourceValidator(nil)

	t.Run("creates nested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		require.NoError(t, v.ValidateOutputDirectory(dir))
		assert.DirExists(t, dir)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		err := v.ValidateOutputDirectory(file)
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrTypeStorage, appErr.Type)
	})
}
