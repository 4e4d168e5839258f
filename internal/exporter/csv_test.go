package exporter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsdash/internal/config"
)

func setupTestWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCSVWriter(&config.Paths{OutputDir: dir}, nil), dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	writer, dir := setupTestWriter(t)

	err := writer.WriteCSV("weekly.csv", WriteOptions{
		Headers: []string{"period", "top_genre"},
		Records: [][]string{
			{"2021-01-04/2021-01-10", "pop"},
			{"2021-01-11/2021-01-17", "hip hop, rap"},
		},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "weekly.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"period,top_genre\n2021-01-04/2021-01-10,pop\n2021-01-11/2021-01-17,\"hip hop, rap\"\n",
		string(content))
	assert.NotEqual(t, byte(0xEF), content[0], "no byte-order mark")
	assert.Equal(t, []string{"weekly.csv"}, listDir(t, dir))
}

func TestCSVWriter_Overwrite(t *testing.T) {
	writer, dir := setupTestWriter(t)
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old,content\n1,2\n3,4\n"), 0644))

	require.NoError(t, writer.WriteCSV(path, WriteOptions{Headers: []string{"a"}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(content))
}

func TestCSVWriter_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	writer := NewCSVWriter(&config.Paths{OutputDir: dir}, nil)

	require.NoError(t, writer.WriteCSV("x.csv", WriteOptions{Headers: []string{"a"}}))
	assert.FileExists(t, filepath.Join(dir, "x.csv"))
}

func TestStreamWriter_AbortLeavesDestinationUntouched(t *testing.T) {
	writer, dir := setupTestWriter(t)
	path := filepath.Join(dir, "merged.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	stream, err := writer.CreateStreamWriter("merged.csv", []string{"period"})
	require.NoError(t, err)
	require.NoError(t, stream.WriteRecord([]string{"2021-01-04/2021-01-10"}))
	stream.Abort()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(content))
	assert.Equal(t, []string{"merged.csv"}, listDir(t, dir))
}

func TestStreamWriter_CommitTwice(t *testing.T) {
	writer, _ := setupTestWriter(t)

	stream, err := writer.CreateStreamWriter("a.csv", []string{"a"})
	require.NoError(t, err)
	require.NoError(t, stream.Commit())
	assert.Error(t, stream.Commit())
	stream.Abort()
}

func TestWriteFileAtomic_ErrorKeepsOldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})
	require.Error(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
	assert.Equal(t, []string{"summary.json"}, listDir(t, dir))
}
