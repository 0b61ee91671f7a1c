package core

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	got, err := ParseLevel(" warning ")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, got)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevel_Valid(t *testing.T) {
	assert.True(t, FatalLevel.Valid())
	assert.True(t, DebugLevel.Valid())
	assert.False(t, Level(-1).Valid())
	assert.False(t, Level(5).Valid())
}

func TestNewFormatRequest_CopiesMessages(t *testing.T) {
	msgs := []any{"a", 1}
	req := NewFormatRequest(InfoLevel, msgs)
	msgs[0] = "changed"

	assert.Equal(t, "a", req.Messages[0])
	assert.Equal(t, InfoLevel, req.Level)
}

func TestErrors_MatchSentinels(t *testing.T) {
	cfgErr := fmt.Errorf("wrapped: %w", NewConfigurationError("create", "already open"))
	assert.True(t, errors.Is(cfgErr, ErrConfiguration))
	assert.False(t, errors.Is(cfgErr, ErrIncompatibleTarget))

	var ce *ConfigurationError
	require.True(t, errors.As(cfgErr, &ce))
	assert.Equal(t, "create: already open", ce.Error())

	targetErr := NewIncompatibleTargetError("/tmp/logs", "drwxr-xr-x")
	assert.True(t, errors.Is(targetErr, ErrIncompatibleTarget))
	assert.Contains(t, targetErr.Error(), "/tmp/logs")
}

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	time.Sleep(2 * time.Millisecond)

	diff := time.Since(CoarseNow())
	if diff < 0 {
		diff = -diff
	}
	assert.Less(t, diff, 50*time.Millisecond)
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()

	assert.False(t, CoarseNow().IsZero())
}
