// package signals implements the in-process publish/subscribe bus that lets
// unrelated components react to the same mutation without a shared store.
//
// Events are named, payload-less notifications. Emission is synchronous and
// in subscriber-registration order; there is no replay or buffering, so a
// handler registered after an emission never sees it. The bus is scoped
// strictly to notification, not data transport.
package signals

import "sync"

// Event names used at the boundary between resource views.
const (
	WatchlistChanged = "watchlist-changed"
	ThemeChanged     = "theme-changed"
)

// Handler is invoked once per emission of the event it subscribed to.
type Handler func()

type subscriber struct {
	seq int
	fn  Handler
}

// Bus is a minimal publish/subscribe registry keyed by event name.
//
// Safe for concurrent use; handlers run synchronously on the emitting
// goroutine.
type Bus struct {
	mu      sync.Mutex
	nextSeq int
	subs    map[string][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscriber)}
}

// Subscribe registers fn for the named event and returns an unsubscribe
// function. Unsubscribing is idempotent; after it returns, fn is never
// invoked again.
func (b *Bus) Subscribe(event string, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	seq := b.nextSeq
	b.subs[event] = append(b.subs[event], subscriber{seq: seq, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		list := b.subs[event]
		for i, sub := range list {
			if sub.seq == seq {
				b.subs[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Emit notifies all handlers currently registered for the named event, in
// registration order. Handlers registered during an emission are not
// notified for that emission; handlers unsubscribed mid-emission are skipped.
func (b *Bus) Emit(event string) {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs[event]))
	copy(snapshot, b.subs[event])
	b.mu.Unlock()

	for _, sub := range snapshot {
		if b.subscribed(event, sub.seq) {
			sub.fn()
		}
	}
}

func (b *Bus) subscribed(event string, seq int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[event] {
		if sub.seq == seq {
			return true
		}
	}
	return false
}

var (
	defaultBus  *Bus
	defaultOnce sync.Once
)

// Default returns the process-wide bus, lazily initialized on first use and
// alive for the application's lifetime.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = NewBus()
	})
	return defaultBus
}
