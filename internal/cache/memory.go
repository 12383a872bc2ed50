package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/venuely/internal/log"
	"github.com/viant/venuely/pkg/venue"
)

// Memory is an in-process Storage holding raw JSON per key, so that values
// round-trip through the same encoding as durable stores.
type Memory struct {
	mu        sync.RWMutex
	entries   map[string][]byte
	collector *log.Collector
}

// NewMemory returns an empty in-process storage.
func NewMemory() *Memory {
	return &Memory{entries: map[string][]byte{}, collector: log.Default}
}

func (m *Memory) Save(_ context.Context, key string, venues []*venue.Venue) {
	if venues == nil {
		venues = []*venue.Venue{}
	}
	data, err := json.Marshal(venues)
	if err != nil {
		m.collector.Report(log.CacheFailure, "save", key, err)
		return
	}
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
}

func (m *Memory) Load(_ context.Context, key string) []*venue.Venue {
	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return []*venue.Venue{}
	}
	return decode(m.collector, key, data)
}

func (m *Memory) Clear(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Put stores raw data under key, bypassing encoding.
func (m *Memory) Put(key string, data []byte) {
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
}
