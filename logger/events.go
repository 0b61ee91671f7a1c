package logger

import (
	"sync"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/handler"
)

// Listener is called with every event it subscribed to
type Listener func(ev core.Event)

type subscription struct {
	id uint64
	fn Listener
}

// listeners is a synchronous registry of per-level and catch-all
// subscriptions
type listeners struct {
	mu       sync.RWMutex
	nextID   uint64
	level    map[core.Level][]subscription
	catchAll []subscription
}

func (r *listeners) add(level core.Level, all bool, fn Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	sub := subscription{id: r.nextID, fn: fn}
	if all {
		r.catchAll = append(r.catchAll, sub)
	} else {
		if r.level == nil {
			r.level = make(map[core.Level][]subscription)
		}
		r.level[level] = append(r.level[level], sub)
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(sub.id) })
	}
}

func (r *listeners) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catchAll = without(r.catchAll, id)
	for level, subs := range r.level {
		r.level[level] = without(subs, id)
	}
}

func without(subs []subscription, id uint64) []subscription {
	for i, sub := range subs {
		if sub.id == id {
			out := make([]subscription, 0, len(subs)-1)
			out = append(out, subs[:i]...)
			return append(out, subs[i+1:]...)
		}
	}
	return subs
}

// dispatch calls the listeners for ev.Level, then the catch-all
// listeners, each group in subscription order
func (r *listeners) dispatch(ev core.Event) {
	r.mu.RLock()
	specific := r.level[ev.Level]
	all := r.catchAll
	r.mu.RUnlock()

	for _, sub := range specific {
		sub.fn(ev)
	}
	for _, sub := range all {
		sub.fn(ev)
	}
}

func (r *listeners) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.catchAll)
	for _, subs := range r.level {
		n += len(subs)
	}
	return n
}

// On subscribes fn to events of one level logged on l or any of its
// descendants. The returned function unsubscribes.
func (l *Logger) On(level core.Level, fn Listener) (unsubscribe func()) {
	return l.listeners.add(level, false, fn)
}

// OnAny subscribes fn to events of every level
func (l *Logger) OnAny(fn Listener) (unsubscribe func()) {
	return l.listeners.add(0, true, fn)
}

// Attach subscribes h to every event. Errors returned by h are ignored.
// Detaching does not close h.
func (l *Logger) Attach(h handler.Handler) (detach func()) {
	return l.OnAny(func(ev core.Event) {
		_ = h.Handle(ev)
	})
}

// ListenerCount returns the number of active subscriptions on l
func (l *Logger) ListenerCount() int {
	return l.listeners.count()
}

// emit notifies l's listeners, then each ancestor's in turn
func (l *Logger) emit(ev core.Event) {
	for cur := l; cur != nil; cur = cur.Parent() {
		cur.listeners.dispatch(ev)
	}
}
