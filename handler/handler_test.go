package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/duolog/core"
)

type recordingHandler struct {
	events []core.Event
	err    error
	closed int
}

func (r *recordingHandler) Handle(ev core.Event) error {
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordingHandler) Close() error {
	r.closed++
	return r.err
}

func TestMultiHandler(t *testing.T) {
	h1 := &recordingHandler{}
	h2 := &recordingHandler{err: errors.New("h2 failed")}
	h3 := &recordingHandler{}

	multi := NewMultiHandler(h1, h2, h3)

	ev := core.Event{FormatRequest: core.FormatRequest{Level: core.InfoLevel, Messages: []any{"multi test"}}}
	err := multi.Handle(ev)
	assert.EqualError(t, err, "h2 failed")

	for i, h := range []*recordingHandler{h1, h2, h3} {
		require.Len(t, h.events, 1, "handler %d", i)
		assert.Equal(t, ev, h.events[0])
	}

	assert.Error(t, multi.Close())
	assert.Equal(t, 1, h1.closed)
	assert.Equal(t, 1, h3.closed)
}

func TestFunc(t *testing.T) {
	var got core.Level
	h := Func(func(ev core.Event) error {
		got = ev.Level
		return nil
	})

	require.NoError(t, h.Handle(core.Event{FormatRequest: core.FormatRequest{Level: core.WarnLevel}}))
	assert.Equal(t, core.WarnLevel, got)
	assert.NoError(t, h.Close())
}

func TestStats(t *testing.T) {
	s := NewStats()

	s.IncrementWritten(core.InfoLevel)
	s.IncrementWritten(core.InfoLevel)
	s.Record(core.ErrorLevel, errors.New("x"))
	s.Record(core.DebugLevel, nil)
	s.IncrementWritten(core.Level(42))

	assert.Equal(t, uint64(2), s.GetWritten(core.InfoLevel))
	assert.Equal(t, uint64(1), s.GetFailed(core.ErrorLevel))
	assert.Equal(t, uint64(0), s.GetWritten(core.Level(42)))

	snap := s.GetSnapshot()
	assert.Equal(t, uint64(3), snap.WrittenTotal)
	assert.Equal(t, uint64(1), snap.FailedTotal)
	assert.Len(t, snap.Written, 5)

	s.Reset()
	snap = s.GetSnapshot()
	assert.Zero(t, snap.WrittenTotal)
	assert.Zero(t, snap.FailedTotal)
}
