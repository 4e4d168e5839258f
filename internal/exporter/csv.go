package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vsdash/internal/config"
)

// CSVWriter writes tables under the configured output directory. Every file
// is staged next to its destination and renamed into place, so readers never
// observe a partially written table.
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers []string
	Records [][]string
}

// WriteCSV writes headers and records to filePath, replacing any existing file.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	stream, err := w.CreateStreamWriter(filePath, options.Headers)
	if err != nil {
		return err
	}

	for i, record := range options.Records {
		if err := stream.WriteRecord(record); err != nil {
			stream.Abort()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := stream.Commit(); err != nil {
		return err
	}

	w.logger.Debug("Wrote CSV file",
		slog.String("full_path", stream.path),
		slog.Int("record_count", len(options.Records)))
	return nil
}

// StreamWriter writes records one at a time to a staged file. Nothing is
// visible at the destination until Commit succeeds.
type StreamWriter struct {
	file   *os.File
	writer *csv.Writer
	path   string
	done   bool
}

// CreateStreamWriter stages a new CSV file for filePath and writes headers.
func (w *CSVWriter) CreateStreamWriter(filePath string, headers []string) (*StreamWriter, error) {
	fullPath := w.resolvePath(filePath)

	file, err := createStaged(fullPath)
	if err != nil {
		return nil, err
	}

	s := &StreamWriter{
		file:   file,
		writer: csv.NewWriter(file),
		path:   fullPath,
	}

	if len(headers) > 0 {
		if err := s.writer.Write(headers); err != nil {
			s.Abort()
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}
	return s, nil
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Commit flushes the stream and moves it to its destination.
func (s *StreamWriter) Commit() error {
	if s.done {
		return fmt.Errorf("stream for %s already closed", s.path)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.Abort()
		return fmt.Errorf("failed to flush %s: %w", s.path, err)
	}
	s.done = true
	return commitStaged(s.file, s.path)
}

// Abort discards the staged file. It is safe to call after Commit.
func (s *StreamWriter) Abort() {
	if s.done {
		return
	}
	s.done = true
	discardStaged(s.file)
}

// resolvePath places relative paths under the output directory.
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return filepath.Join(w.paths.OutputDir, filePath)
}
