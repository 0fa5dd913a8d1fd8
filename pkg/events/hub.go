package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const defaultBufferSize = 16

// Subscription receives values published on a Hub.
type Subscription[T any] interface {
	// ID uniquely identifies the subscription within its hub.
	ID() string
	// C returns the receive channel. It is closed once the subscription ends.
	C() <-chan T
	// Close ends the subscription. It is idempotent.
	Close() error
}

// Hub fans values out to subscriptions without ever blocking the publisher.
// All methods are safe for concurrent use.
type Hub[T any] struct {
	subs       map[string]*subscription[T]
	bufferSize int
	closed     bool
	mu         sync.RWMutex
	cleanupWg  sync.WaitGroup
}

// NewHub creates an empty hub.
func NewHub[T any](opts ...HubOption) *Hub[T] {
	cfg := hubConfig{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Hub[T]{
		subs:       make(map[string]*subscription[T]),
		bufferSize: cfg.bufferSize,
	}
}

// Subscribe registers a new subscription. It is released automatically when ctx is canceled.
// Subscribing to a closed hub returns an already closed subscription.
func (h *Hub[T]) Subscribe(ctx context.Context, opts ...SubscribeOption[T]) Subscription[T] {
	cfg := subscribeConfig[T]{bufferSize: h.bufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	sub := &subscription[T]{
		id:      uuid.NewString(),
		ch:      make(chan T, cfg.bufferSize),
		closeCh: make(chan struct{}),
		filter:  cfg.filter,
		hub:     h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close()
		return sub
	}
	h.subs[sub.id] = sub

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			select {
			case <-ctx.Done():
				h.remove(sub.id)
			case <-sub.closeCh:
			}
		}()
	}

	return sub
}

// Notify delivers v to every matching subscription.
// Subscriptions whose buffer is full are dropped.
func (h *Hub[T]) Notify(_ context.Context, v T) error {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed
	}

	var slow []string
	for id, sub := range h.subs {
		if !sub.deliver(v) {
			slow = append(slow, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range slow {
		h.remove(id)
	}

	return nil
}

// Len returns the number of active subscriptions.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes the hub and every subscription. It is safe to call more than once.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	for id, sub := range h.subs {
		sub.close()
		delete(h.subs, id)
	}
	h.mu.Unlock()

	h.cleanupWg.Wait()
	return nil
}

func (h *Hub[T]) remove(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	delete(h.subs, id)
	h.mu.Unlock()

	if ok {
		sub.close()
	}
}

type subscription[T any] struct {
	id     string
	ch     chan T
	filter func(T) bool
	hub    *Hub[T]

	mu      sync.RWMutex
	closed  bool
	closeCh chan struct{}
}

func (s *subscription[T]) ID() string  { return s.id }
func (s *subscription[T]) C() <-chan T { return s.ch }

func (s *subscription[T]) Close() error {
	s.hub.remove(s.id)
	// Covers subscriptions never registered with the hub.
	s.close()
	return nil
}

func (s *subscription[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
	close(s.closeCh)
}

// deliver reports false when the subscription should be dropped.
// Filtered-out values count as delivered.
func (s *subscription[T]) deliver(v T) bool {
	if s.filter != nil && !s.filter(v) {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
