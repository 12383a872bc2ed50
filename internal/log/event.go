package log

import (
	"encoding/json"
	"io"
	stdlog "log"
	"sync"
	"time"
)

// EventType represents classification of a diagnostic event.
type EventType string

const (
	RemoteFailure EventType = "REMOTE_FAILURE"
	CacheFailure  EventType = "CACHE_FAILURE"
	CacheFallback EventType = "CACHE_FALLBACK"
)

type Event struct {
	Time      time.Time `json:"ts"`
	EventType EventType `json:"eventtype"`
	Op        string    `json:"op"`
	Key       string    `json:"key,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Collector collects events and fans them out to subscribers.
type Collector struct {
	mu   sync.RWMutex
	subs []chan Event
}

var Default = &Collector{}

// Publish sends an event to all subscribers of the default collector (non-blocking).
func Publish(e Event) {
	Default.Publish(e)
}

func (c *Collector) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range c.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Report logs err and publishes it as an event of the given type.
func (c *Collector) Report(eventType EventType, op, key string, err error) {
	e := Event{EventType: eventType, Op: op, Key: key}
	if err != nil {
		e.Error = err.Error()
		stdlog.Printf("%s: %s: %v", eventType, op, err)
	} else {
		stdlog.Printf("%s: %s", eventType, op)
	}
	c.Publish(e)
}

// Subscribe returns a receive-only channel for events. buf is channel size.
func (c *Collector) Subscribe(buf int) <-chan Event {
	ch := make(chan Event, buf)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// FileSink writes every event (JSON encoded) to w, filtering by event types if
// provided. The returned stop func flushes pending events and detaches the sink.
func FileSink(w io.Writer, filters ...EventType) (stop func()) {
	return Default.FileSink(w, filters...)
}

// FileSink subscribes before returning, so events published afterwards are
// never missed.
func (c *Collector) FileSink(w io.Writer, filters ...EventType) (stop func()) {
	want := map[EventType]bool{}
	for _, f := range filters {
		want[f] = true
	}
	events := c.Subscribe(100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		enc := json.NewEncoder(w)
		for ev := range events {
			if len(want) > 0 && !want[ev.EventType] {
				continue
			}
			_ = enc.Encode(ev)
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			c.unsubscribe(events)
			<-done
		})
	}
}

// unsubscribe detaches and closes the subscriber channel.
func (c *Collector) unsubscribe(events <-chan Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ch := range c.subs {
		if ch == events {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			close(ch)
			return
		}
	}
}
