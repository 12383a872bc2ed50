package venue

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/venuely/internal/cache"
	"github.com/viant/venuely/internal/log"
	"github.com/viant/venuely/pkg/venue"
)

// Remote is the authoritative venue store.
type Remote interface {
	List(ctx context.Context) ([]*venue.Venue, error)
	Get(ctx context.Context, id string) (*venue.Venue, error)
	Create(ctx context.Context, v *venue.Venue) (*venue.Venue, error)
	Update(ctx context.Context, id string, v *venue.Venue) (*venue.Venue, error)
	Delete(ctx context.Context, id string) error
}

// Manager holds the venue view state and applies user actions against the
// remote store, falling back to the local cache whenever a remote call fails.
//
// The cache is written on list load and on every failed mutation; successful
// mutations only update the in-memory collection.
type Manager struct {
	remote    Remote
	storage   cache.Storage
	key       string
	collector *log.Collector

	mu         sync.RWMutex
	collection []*venue.Venue
	selected   *venue.Venue
	form       venue.Venue
}

// Option customizes a Manager.
type Option func(m *Manager)

// WithKey overrides the cache key (default "venues").
func WithKey(key string) Option {
	return func(m *Manager) {
		if strings.TrimSpace(key) != "" {
			m.key = key
		}
	}
}

// WithCollector sets the diagnostic collector.
func WithCollector(c *log.Collector) Option {
	return func(m *Manager) {
		if c != nil {
			m.collector = c
		}
	}
}

// New creates a manager; a nil storage falls back to an in-process one.
func New(remote Remote, storage cache.Storage, opts ...Option) *Manager {
	if storage == nil {
		storage = cache.NewMemory()
	}
	m := &Manager{
		remote:     remote,
		storage:    storage,
		key:        cache.DefaultKey,
		collector:  log.Default,
		collection: []*venue.Venue{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Load fetches the collection from the remote store and mirrors it to the
// cache, or reads the cache when the remote store is unavailable.
func (m *Manager) Load(ctx context.Context) {
	venues, err := m.remote.List(ctx)
	if err != nil {
		m.fallback("list", err)
		m.setCollection(m.storage.Load(ctx, m.key))
		return
	}
	if venues == nil {
		venues = []*venue.Venue{}
	}
	m.setCollection(venues)
	m.storage.Save(ctx, m.key, venues)
}

// ShowDetail selects the venue with the given id. On remote failure the
// cached record is selected, or nothing when the cache has no match.
func (m *Manager) ShowDetail(ctx context.Context, id string) {
	v, err := m.remote.Get(ctx, id)
	if err != nil {
		m.fallback("get", err)
		v = venue.Find(m.storage.Load(ctx, m.key), id)
	}
	m.mu.Lock()
	m.selected = v
	m.mu.Unlock()
}

// CloseDetail clears the selected venue.
func (m *Manager) CloseDetail() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

// Submit updates the venue when the form carries an id and creates one otherwise.
func (m *Manager) Submit(ctx context.Context) {
	form := m.Form()
	if form.IsNew() {
		m.create(ctx, form)
		return
	}
	m.update(ctx, form)
}

func (m *Manager) create(ctx context.Context, form *venue.Venue) {
	created, err := m.remote.Create(ctx, form)
	if err != nil {
		m.fallback("create", err)
		m.mutateCache(ctx, func(cached []*venue.Venue) []*venue.Venue {
			return venue.Append(cached, form)
		})
		return
	}
	m.mu.Lock()
	m.collection = venue.Append(m.collection, created)
	m.form = venue.Venue{}
	m.mu.Unlock()
}

func (m *Manager) update(ctx context.Context, form *venue.Venue) {
	updated, err := m.remote.Update(ctx, form.Id, form)
	if err != nil {
		m.fallback("update", err)
		m.mutateCache(ctx, func(cached []*venue.Venue) []*venue.Venue {
			return venue.Replace(cached, form.Id, form)
		})
		return
	}
	m.mu.Lock()
	m.collection = venue.Replace(m.collection, form.Id, updated)
	m.form = venue.Venue{}
	m.mu.Unlock()
}

// Delete removes the venue with the given id.
func (m *Manager) Delete(ctx context.Context, id string) {
	if err := m.remote.Delete(ctx, id); err != nil {
		m.fallback("delete", err)
		m.mutateCache(ctx, func(cached []*venue.Venue) []*venue.Venue {
			return venue.Remove(cached, id)
		})
		return
	}
	m.mu.Lock()
	m.collection = venue.Remove(m.collection, id)
	m.mu.Unlock()
}

// StartEdit copies v into the form, switching it to update mode.
func (m *Manager) StartEdit(v *venue.Venue) {
	if v == nil {
		return
	}
	m.mu.Lock()
	m.form = *v
	m.mu.Unlock()
}

// CancelEdit resets the form, switching it back to create mode.
func (m *Manager) CancelEdit() {
	m.mu.Lock()
	m.form = venue.Venue{}
	m.mu.Unlock()
}

// SetField sets a single form field by its input name.
func (m *Manager) SetField(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id":
		m.form.Id = value
	case "name":
		m.form.Name = value
	case "location":
		m.form.Location = value
	case "description", "desc":
		m.form.Description = value
	case "capacity":
		capacity, err := venue.ParseCapacity(value)
		if err != nil {
			return err
		}
		m.form.Capacity = capacity
	default:
		return fmt.Errorf("unknown field: %s", name)
	}
	return nil
}

// Venues returns the current collection.
func (m *Manager) Venues() []*venue.Venue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*venue.Venue{}, m.collection...)
}

// Selected returns the venue shown in the detail view, or nil.
func (m *Manager) Selected() *venue.Venue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selected.Clone()
}

// Form returns a copy of the form.
func (m *Manager) Form() *venue.Venue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	form := m.form
	return &form
}

// Editing reports whether the form targets an existing venue.
func (m *Manager) Editing() bool {
	return !m.Form().IsNew()
}

func (m *Manager) setCollection(venues []*venue.Venue) {
	m.mu.Lock()
	m.collection = venues
	m.mu.Unlock()
}

// mutateCache applies fn to the cached collection, saves the result and
// makes it the working collection.
func (m *Manager) mutateCache(ctx context.Context, fn func(cached []*venue.Venue) []*venue.Venue) {
	updated := fn(m.storage.Load(ctx, m.key))
	m.storage.Save(ctx, m.key, updated)
	m.setCollection(updated)
}

func (m *Manager) fallback(op string, err error) {
	m.collector.Report(log.RemoteFailure, op, "", err)
	m.collector.Publish(log.Event{EventType: log.CacheFallback, Op: op, Key: m.key})
}
