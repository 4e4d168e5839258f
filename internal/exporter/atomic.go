package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes the output of fn to path through a staged file in
// the same directory. On any error the destination is left untouched.
func WriteFileAtomic(path string, fn func(io.Writer) error) error {
	file, err := createStaged(path)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		discardStaged(file)
		return err
	}
	return commitStaged(file, path)
}

func createStaged(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

func commitStaged(file *os.File, path string) error {
	if err := file.Sync(); err != nil {
		discardStaged(file)
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(file.Name(), 0644); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

func discardStaged(file *os.File) {
	file.Close()
	os.Remove(file.Name())
}
