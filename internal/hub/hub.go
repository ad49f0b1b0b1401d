// Package hub fans incoming sensor readings out to connected dashboard
// clients.
package hub

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hydromon/internal/model"
)

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan model.SensorReading
	log         *zap.Logger
}

func New(log *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]chan model.SensorReading),
		log:         log,
	}
}

// Subscribe registers a reading channel that is removed when ctx is done.
func (h *Hub) Subscribe(ctx context.Context) <-chan model.SensorReading {
	ch := make(chan model.SensorReading, 8)
	id := uuid.NewString()

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
		h.log.Debug("dashboard client closed", zap.String("subscriber", id))
	}()

	return ch
}

// Broadcast never blocks; a subscriber with a full buffer misses the reading.
func (h *Hub) Broadcast(r model.SensorReading) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- r:
		default:
		}
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
