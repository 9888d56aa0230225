package broadcast

import (
	"context"
	"sync"
	"time"
)

// Event is the payload pushed to connected clients when a notification is created
type Event struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber receives events from a Broadcaster over a buffered channel
type Subscriber struct {
	ch     chan Event
	closed bool
	mu     sync.Mutex
}

// Receive returns the channel events are delivered on. The channel is closed
// when the subscription ends.
func (s *Subscriber) Receive() <-chan Event {
	return s.ch
}

func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// send delivers an event without blocking; returns false if the subscriber is
// closed or its buffer is full
func (s *Subscriber) send(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Broadcaster fans events out to all subscribers. Delivery is best-effort:
// events are dropped for subscribers that cannot keep up, so a slow client
// never blocks a broadcast. All methods are safe for concurrent use.
type Broadcaster struct {
	subscribers map[*Subscriber]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewBroadcaster creates an in-memory broadcaster. Each subscriber gets its own
// channel buffered to bufferSize; a minimum of 1 is enforced to keep sends
// non-blocking.
func NewBroadcaster(bufferSize int) *Broadcaster {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Broadcaster{
		subscribers: make(map[*Subscriber]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a new subscriber. The subscription is removed when the
// context is cancelled. If the broadcaster is already closed, the returned
// subscriber's channel is closed immediately.
func (b *Broadcaster) Subscribe(ctx context.Context) *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscriber{ch: make(chan Event, b.bufferSize)}

	if b.closed {
		sub.close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Broadcast sends an event to every active subscriber. Subscribers whose
// buffers are full miss the event and are detached.
func (b *Broadcaster) Broadcast(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subscribers {
		if !sub.send(ev) {
			// detach asynchronously so a dead subscriber cannot stall the fan-out
			go b.unsubscribe(sub)
		}
	}
}

// Close shuts down the broadcaster and closes all subscriber channels.
// It is safe to call multiple times.
func (b *Broadcaster) Close() {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true

	for sub := range b.subscribers {
		sub.close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()
}

func (b *Broadcaster) unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	sub.close()
}
