package searchlight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/searchlight/testutil"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug).WithKind("temporal").WithMetric("cosine")

	logger.WithCenter(7).LogPatch(context.Background(), 12, nil)
	logger.WithSeries(2).LogPatch(context.Background(), 0, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "temporal", lines[0]["kind"])
	assert.Equal(t, "cosine", lines[0]["metric"])
	assert.EqualValues(t, 7, lines[0]["center"])
	assert.EqualValues(t, 12, lines[0]["features"])

	assert.NotContains(t, lines[0], "series")

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.EqualValues(t, 2, lines[1]["series"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLogStreamDone(t *testing.T) {
	tests := []struct {
		name     string
		produced int
		err      error
		msg      string
	}{
		{"completed", 5, nil, "searchlight completed"},
		{"abandoned", 2, nil, "searchlight abandoned"},
		{"stopped", 2, errors.New("boom"), "searchlight stopped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newBufferLogger(&buf, slog.LevelInfo).LogStreamDone(context.Background(), tt.produced, 5, tt.err)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.msg, lines[0]["msg"])
		})
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestStreamLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	data := testutil.NewRNG(1).GaussianArray(3, 2, 6)

	s, err := Temporal(ctx, data, 1, WithMetric("euclidean"), WithLogger(newBufferLogger(&buf, slog.LevelInfo)))
	require.NoError(t, err)
	_, err = s.Collect(ctx)
	require.NoError(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "searchlight prepared", lines[0]["msg"])
	assert.EqualValues(t, 1, lines[0]["folds"])
	assert.Equal(t, "searchlight completed", lines[1]["msg"])
	assert.EqualValues(t, s.Len(), lines[1]["produced"])
}

func TestPatchLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()
	data := testutil.NewRNG(2).GaussianArray(4, 3, 8)

	s, err := SpatioTemporal(ctx, data, testutil.LineDistances(3), 1.5, 2,
		WithMetric("euclidean"),
		WithLogger(newBufferLogger(&buf, slog.LevelDebug)),
	)
	require.NoError(t, err)
	_, err = s.Collect(ctx)
	require.NoError(t, err)

	var patches []map[string]any
	for _, line := range decodeLines(t, &buf) {
		if line["msg"] == "patch computed" {
			patches = append(patches, line)
		}
	}
	require.Len(t, patches, s.Len())
	assert.EqualValues(t, 0, patches[0]["series"])
	assert.EqualValues(t, 2, patches[0]["center"])
	assert.Equal(t, "spatio-temporal", patches[0]["kind"])
}
