package consolehandler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/handler"
)

func event(level core.Level, console string) core.Event {
	return core.Event{
		FormatRequest: core.FormatRequest{Level: level},
		Console:       console,
	}
}

func TestConsoleHandler_Routing(t *testing.T) {
	var errBuf, warnBuf, infoBuf bytes.Buffer
	h := New(Config{Error: &errBuf, Warn: &warnBuf, Info: &infoBuf})
	defer h.Close()

	tests := []struct {
		level core.Level
		want  *bytes.Buffer
	}{
		{core.FatalLevel, &errBuf},
		{core.ErrorLevel, &errBuf},
		{core.WarnLevel, &warnBuf},
		{core.InfoLevel, &infoBuf},
		{core.DebugLevel, &infoBuf},
	}
	for _, tt := range tests {
		errBuf.Reset()
		warnBuf.Reset()
		infoBuf.Reset()

		require.NoError(t, h.Handle(event(tt.level, "line "+tt.level.String())))
		assert.Equal(t, "line "+tt.level.String()+"\n", tt.want.String(), "level %s", tt.level)
		assert.Equal(t, len(tt.want.String()), errBuf.Len()+warnBuf.Len()+infoBuf.Len(), "level %s written twice", tt.level)
	}
}

func TestConsoleHandler_Defaults(t *testing.T) {
	h := New(Config{})
	assert.Equal(t, os.Stderr, h.WriterFor(core.ErrorLevel))
	assert.Equal(t, os.Stderr, h.WriterFor(core.WarnLevel))
	assert.Equal(t, os.Stdout, h.WriterFor(core.DebugLevel))
}

func TestConsoleHandler_SharedWriterIsLocked(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Error: &buf, Warn: &buf, Info: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(level core.Level) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = h.Handle(event(level, "0123456789"))
			}
		}(core.Levels()[i%5])
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 800)
	for _, line := range lines {
		assert.Equal(t, "0123456789", line)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleHandler_Stats(t *testing.T) {
	h := New(Config{Error: failingWriter{}, Warn: io.Discard, Info: io.Discard})

	assert.Error(t, h.Handle(event(core.ErrorLevel, "x")))
	assert.NoError(t, h.Handle(event(core.InfoLevel, "x")))
	assert.NoError(t, h.Handle(event(core.InfoLevel, "y")))

	snap := h.Stats()
	assert.Equal(t, uint64(1), snap.Failed[core.ErrorLevel])
	assert.Equal(t, uint64(2), snap.Written[core.InfoLevel])
	assert.Equal(t, uint64(2), snap.WrittenTotal)
	assert.Equal(t, uint64(1), snap.FailedTotal)
}

func TestConsoleHandler_Close(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Info: &buf})

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Handle(event(core.InfoLevel, "late")), handler.ErrClosed)
	assert.Zero(t, buf.Len())
}
