package venue

import (
	"sync"

	"github.com/google/uuid"
	"github.com/viant/venuely/pkg/venue"
)

// Store is an in-memory venue repository preserving creation order.
type Store struct {
	mu     sync.RWMutex
	ids    []string
	venues map[string]*venue.Venue
	newID  func() string
}

// NewStore creates an empty store assigning uuid based ids.
func NewStore() *Store {
	return &Store{
		venues: map[string]*venue.Venue{},
		newID:  uuid.NewString,
	}
}

func (s *Store) List() []*venue.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]*venue.Venue, 0, len(s.ids))
	for _, id := range s.ids {
		ret = append(ret, s.venues[id].Clone())
	}
	return ret
}

func (s *Store) Get(id string) (*venue.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	return v.Clone(), ok
}

// Create stores a copy of v under a freshly assigned id; any id carried by v is ignored.
func (s *Store) Create(v *venue.Venue) *venue.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := v.Clone()
	if stored == nil {
		stored = &venue.Venue{}
	}
	stored.Id = s.newID()
	s.ids = append(s.ids, stored.Id)
	s.venues[stored.Id] = stored
	return stored.Clone()
}

func (s *Store) Update(id string, v *venue.Venue) (*venue.Venue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return nil, false
	}
	stored := v.Clone()
	if stored == nil {
		stored = &venue.Venue{}
	}
	stored.Id = id
	s.venues[id] = stored
	return stored.Clone(), true
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return false
	}
	delete(s.venues, id)
	for i, candidate := range s.ids {
		if candidate == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}
