package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Report(t *testing.T) {
	collector := &Collector{}
	events := collector.Subscribe(2)

	collector.Report(RemoteFailure, "list", "", errors.New("connection refused"))
	collector.Report(CacheFallback, "list", "venues", nil)

	first := <-events
	assert.EqualValues(t, RemoteFailure, first.EventType)
	assert.EqualValues(t, "list", first.Op)
	assert.EqualValues(t, "connection refused", first.Error)
	assert.False(t, first.Time.IsZero())

	second := <-events
	assert.EqualValues(t, CacheFallback, second.EventType)
	assert.EqualValues(t, "venues", second.Key)
	assert.Empty(t, second.Error)
}

func TestCollector_PublishDoesNotBlock(t *testing.T) {
	collector := &Collector{}
	events := collector.Subscribe(1)
	collector.Publish(Event{EventType: CacheFailure})
	collector.Publish(Event{EventType: RemoteFailure})
	assert.Len(t, events, 1)
}

func TestCollector_FileSink(t *testing.T) {
	collector := &Collector{}
	buf := &bytes.Buffer{}
	stop := collector.FileSink(buf, RemoteFailure)

	collector.Report(RemoteFailure, "list", "", errors.New("connection refused"))
	collector.Publish(Event{EventType: CacheFallback, Op: "list"})
	stop()
	stop()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.EqualValues(t, RemoteFailure, ev.EventType)
	assert.EqualValues(t, "connection refused", ev.Error)

	collector.Publish(Event{EventType: RemoteFailure})
	assert.Empty(t, collector.subs)
}
