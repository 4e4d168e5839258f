package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogCapture(t *testing.T) {
	logger, capture := NewTestLogger(t)

	logger.With(slog.String("dataset", "volcano")).Warn("empty", slog.Int("rows", 0))
	logger.Debug("dropped row")

	r := AssertLogged(t, capture, slog.LevelWarn, "empty")
	assert.Equal(t, "volcano", r.Attrs["dataset"])
	assert.Equal(t, int64(0), r.Attrs["rows"])
	assert.Equal(t, 1, capture.Count(slog.LevelDebug))
	assert.Len(t, capture.Records(), 2)

	_, ok := capture.Find(slog.LevelError, "empty")
	assert.False(t, ok)
}
