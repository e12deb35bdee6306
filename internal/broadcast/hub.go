// Package broadcast fans freshly computed queue views out to every connected
// observer: the waiting-room display, patients' phones, anything that
// subscribed. Delivery is best-effort; one stuck observer never holds up the
// others or the mutating caller.
package broadcast

import (
	"sync"

	"github.com/sirupsen/logrus"

	"akshara/clinic-queue/internal/domain"
)

// subscriberBufSize absorbs short bursts of mutations; a subscriber that
// falls further behind skips views rather than blocking the publisher.
const subscriberBufSize = 8

type Subscriber struct {
	ch chan domain.QueueView
}

// Views is the stream of queue views, beginning with the view that was
// current at subscription time. The channel closes on Unsubscribe.
func (s *Subscriber) Views() <-chan domain.QueueView {
	return s.ch
}

type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	logger *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		logger: logger,
	}
}

// Subscribe registers an observer and delivers the current view immediately,
// independent of the mutation stream.
func (h *Hub) Subscribe(current domain.QueueView) *Subscriber {
	sub := &Subscriber{ch: make(chan domain.QueueView, subscriberBufSize)}
	sub.ch <- current

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.ch)
	}
}

// Publish pushes a view to every subscriber. Sends are non-blocking so the
// critical section stays bounded: a subscriber with a full buffer drops this
// view and catches up on the next one. Holding the lock keeps the set stable
// against a subscriber leaving (and its channel closing) mid-broadcast.
func (h *Hub) Publish(view domain.QueueView) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case sub.ch <- view:
		default:
			h.logger.Warn("broadcast: subscriber buffer full, dropping view")
		}
	}
}

// Count reports the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
