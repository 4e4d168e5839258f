package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "vsdash/internal/errors"
)

// Source names one pipeline input file.
type Source struct {
	Dataset string
	Path    string
}

// SourceValidator checks pipeline inputs and the output directory before
// any row is read, so every unusable file is reported in one run.
type SourceValidator struct {
	logger *slog.Logger
}

// NewSourceValidator creates a new source validator
func NewSourceValidator(logger *slog.Logger) *SourceValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceValidator{
		logger: logger,
	}
}

// ValidateSources checks every source and joins the failures. Each failure
// is a source error wrapping ErrSourceFileUnreadable.
func (v *SourceValidator) ValidateSources(sources ...Source) error {
	var errs []error
	for _, src := range sources {
		if err := v.ValidateFile(src.Path); err != nil {
			errs = append(errs, apperrors.NewSourceError(src.Dataset, src.Path, err))
			continue
		}
		if ext := strings.ToLower(filepath.Ext(src.Path)); ext != ".csv" {
			v.logger.Warn("Source file does not have a .csv extension",
				slog.String("dataset", src.Dataset),
				slog.String("file", src.Path),
				slog.String("extension", ext))
		}
	}
	return errors.Join(errs...)
}

// ValidateFile checks if a specific file exists, is regular and is readable
func (v *SourceValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists and is writable
func (v *SourceValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	probe, err := os.CreateTemp(dir, ".write_test-*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}
