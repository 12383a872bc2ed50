package cache

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/venuely/internal/log"
	"github.com/viant/venuely/pkg/venue"
)

func memURL(t *testing.T) string {
	return fmt.Sprintf("mem://localhost/venuely/%s/%d", t.Name(), time.Now().UnixNano())
}

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := New(memURL(t))

	assert.Equal(t, []*venue.Venue{}, store.Load(ctx, DefaultKey))

	venues := []*venue.Venue{
		{Id: "v1", Name: "Hall A", Location: "Floor 1", Description: "Main hall", Capacity: 200},
		{Name: "Draft"},
	}
	store.Save(ctx, DefaultKey, venues)
	assert.EqualValues(t, venues, store.Load(ctx, DefaultKey))

	store.Save(ctx, DefaultKey, venues[:1])
	assert.EqualValues(t, venues[:1], store.Load(ctx, DefaultKey))

	store.Clear(ctx, DefaultKey)
	assert.Equal(t, []*venue.Venue{}, store.Load(ctx, DefaultKey))
	store.Clear(ctx, DefaultKey)
}

func TestStore_LoadDegradesToEmpty(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		expectFailure bool
	}{
		{name: "blank value", content: "  "},
		{name: "null value", content: "null"},
		{name: "corrupt value", content: "[{", expectFailure: true},
		{name: "wrong shape", content: `{"id":"v1"}`, expectFailure: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			collector := &log.Collector{}
			events := collector.Subscribe(10)
			store := New(memURL(t), WithCollector(collector))
			require.NoError(t, afs.New().Upload(ctx, store.URL("venues"), 0o644, strings.NewReader(tc.content)))

			actual := store.Load(ctx, "venues")
			assert.NotNil(t, actual)
			assert.Empty(t, actual)
			if tc.expectFailure {
				require.Len(t, events, 1)
				ev := <-events
				assert.EqualValues(t, log.CacheFailure, ev.EventType)
				assert.EqualValues(t, "load", ev.Op)
			} else {
				assert.Len(t, events, 0)
			}
		})
	}
}

func TestStore_URL(t *testing.T) {
	assert.EqualValues(t, "mem://localhost/cache/venues.json", New("mem://localhost/cache/").URL("venues"))
	assert.EqualValues(t, "file:///tmp/venuely/venues.json", New("/tmp/venuely").URL("venues"))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	assert.Equal(t, []*venue.Venue{}, m.Load(ctx, DefaultKey))

	m.Save(ctx, DefaultKey, []*venue.Venue{{Id: "v1", Capacity: 3}})
	assert.EqualValues(t, []*venue.Venue{{Id: "v1", Capacity: 3}}, m.Load(ctx, DefaultKey))

	m.Put(DefaultKey, []byte("not json"))
	assert.Equal(t, []*venue.Venue{}, m.Load(ctx, DefaultKey))

	m.Clear(ctx, DefaultKey)
	assert.Equal(t, []*venue.Venue{}, m.Load(ctx, DefaultKey))
}
