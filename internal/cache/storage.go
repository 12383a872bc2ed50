package cache

import (
	"context"

	"github.com/viant/venuely/pkg/venue"
)

// DefaultKey is the key the venue collection is stored under.
const DefaultKey = "venues"

// Storage persists a full venue collection under a key. Implementations are
// best-effort: failures are reported to the diagnostic channel and never
// returned to the caller.
type Storage interface {
	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, venues []*venue.Venue)
	// Load returns the stored collection, or an empty one when absent or unreadable.
	Load(ctx context.Context, key string) []*venue.Venue
	// Clear removes the value stored under key.
	Clear(ctx context.Context, key string)
}
