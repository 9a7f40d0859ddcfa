package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler_CapturesRecords(t *testing.T) {
	logger, handler := NewBufferedLogger()

	logger.Info("loading file", slog.String("path", "prices.csv"))
	logger.Warn("skipping invalid row", slog.Int("row", 3))

	records := handler.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "loading file", records[0].Message)
	assert.Equal(t, "prices.csv", records[0].Attrs["path"])
	assert.Equal(t, slog.LevelWarn, records[1].Level)
	assert.Equal(t, int64(3), records[1].Attrs["row"])
}

func TestBufferedSlogHandler_Helpers(t *testing.T) {
	logger, handler := NewBufferedLogger()

	logger.Warn("skipping invalid row")
	logger.Warn("skipping invalid row")
	logger.Error("cannot open input file")

	assert.True(t, handler.HasMessageContaining("invalid row"))
	assert.False(t, handler.HasMessageContaining("no such message"))
	assert.Equal(t, 2, handler.CountByLevel(slog.LevelWarn))
	assert.Equal(t, 1, handler.CountByLevel(slog.LevelError))

	handler.Reset()
	assert.Empty(t, handler.Records())
}

func TestBufferedSlogHandler_WithAttrsSharesBuffer(t *testing.T) {
	logger, handler := NewBufferedLogger()

	logger.With("component", "loader").Info("records loaded")

	records := handler.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "loader", records[0].Attrs["component"])
}
