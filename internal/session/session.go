// package session holds the single authoritative session state for the
// running application.
//
// The Context bridges the identity adapter's emission stream to every other
// component: the guard, the request client, and the views all read the same
// snapshot rather than re-querying the provider. It is constructed exactly
// once in main and passed by reference; nothing else may instantiate one.
package session

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/moviemaster/mvx/internal/models"
)

// Session is the current authentication state.
//
// IsLoading is true only between startup and the first emission from the
// identity adapter (the asynchronous restoration window).
type Session struct {
	Identity  *models.Principal
	IsLoading bool
}

// Authenticated reports whether restoration has finished and a principal is
// present.
func (s Session) Authenticated() bool {
	return !s.IsLoading && s.Identity != nil
}

// Observer is notified after every session change, in registration order.
type Observer func(Session)

// Context is the process-wide session holder. The subscription loop started
// by Start is its only writer; all reads go through Snapshot.
type Context struct {
	mu        sync.Mutex
	current   Session
	observers []observerEntry
	nextSeq   int
	done      chan struct{}
	closeOnce sync.Once
	logger    *log.Logger
}

type observerEntry struct {
	seq int
	fn  Observer
}

// NewContext creates the session context in its initial state: loading, no
// identity.
func NewContext(logger *log.Logger) *Context {
	return &Context{
		current: Session{Identity: nil, IsLoading: true},
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Start consumes the identity adapter's emission stream until Close is called
// or the stream ends. The first emission clears IsLoading; every subsequent
// emission updates only Identity. Emissions are applied and delivered to
// observers strictly in arrival order.
func (c *Context) Start(stream <-chan *models.Principal) {
	go func() {
		for {
			select {
			case <-c.done:
				return
			case principal, ok := <-stream:
				if !ok {
					return
				}
				c.apply(principal)
			}
		}
	}()
}

func (c *Context) apply(principal *models.Principal) {
	c.mu.Lock()
	first := c.current.IsLoading
	c.current = Session{Identity: principal, IsLoading: false}
	snapshot := c.current
	observers := make([]observerEntry, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	if first {
		c.logger.Debug("session restored", "authenticated", principal != nil)
	}

	for _, obs := range observers {
		obs.fn(snapshot)
	}
}

// Snapshot returns the current session value. Callers must read through this
// at use time rather than caching the result across operations.
func (c *Context) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe registers an observer for session changes and returns an
// unsubscribe function. The observer is not called with the current value;
// read Snapshot for that.
func (c *Context) Subscribe(fn Observer) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSeq++
	seq := c.nextSeq
	c.observers = append(c.observers, observerEntry{seq: seq, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, obs := range c.observers {
			if obs.seq == seq {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Close stops the subscription loop. Idempotent.
func (c *Context) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
