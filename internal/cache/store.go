package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/venuely/internal/log"
	"github.com/viant/venuely/pkg/venue"
)

// Store keeps each key as a JSON document at <baseURL>/<key>.json on any afs
// supported storage (file://, mem://, s3://, gs://).
type Store struct {
	fs        afs.Service
	baseURL   string
	collector *log.Collector
}

// StoreOption customizes a Store.
type StoreOption func(s *Store)

// WithFS supplies the afs service.
func WithFS(fs afs.Service) StoreOption {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithCollector sets the diagnostic collector failures are reported to.
func WithCollector(c *log.Collector) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.collector = c
		}
	}
}

// New creates a Store rooted at baseURL.
func New(baseURL string, opts ...StoreOption) *Store {
	s := &Store{
		fs:        afs.New(),
		baseURL:   normalizeURL(baseURL),
		collector: log.Default,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// URL returns the location of the entry for key.
func (s *Store) URL(key string) string {
	return url.Join(s.baseURL, key+".json")
}

func (s *Store) Save(ctx context.Context, key string, venues []*venue.Venue) {
	if venues == nil {
		venues = []*venue.Venue{}
	}
	data, err := json.Marshal(venues)
	if err != nil {
		s.collector.Report(log.CacheFailure, "save", key, fmt.Errorf("encode: %w", err))
		return
	}
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err == nil && !exists {
		err = s.fs.Create(ctx, s.baseURL, file.DefaultDirOsMode, true)
	}
	if err != nil {
		s.collector.Report(log.CacheFailure, "save", key, err)
		return
	}
	if err := s.fs.Upload(ctx, s.URL(key), file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		s.collector.Report(log.CacheFailure, "save", key, err)
	}
}

func (s *Store) Load(ctx context.Context, key string) []*venue.Venue {
	URL := s.URL(key)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		s.collector.Report(log.CacheFailure, "load", key, err)
		return []*venue.Venue{}
	}
	if !exists {
		return []*venue.Venue{}
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		s.collector.Report(log.CacheFailure, "load", key, err)
		return []*venue.Venue{}
	}
	return decode(s.collector, key, data)
}

func (s *Store) Clear(ctx context.Context, key string) {
	URL := s.URL(key)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		s.collector.Report(log.CacheFailure, "clear", key, err)
		return
	}
	if !exists {
		return
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		s.collector.Report(log.CacheFailure, "clear", key, err)
	}
}

func decode(collector *log.Collector, key string, data []byte) []*venue.Venue {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*venue.Venue{}
	}
	var venues []*venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		collector.Report(log.CacheFailure, "load", key, fmt.Errorf("decode: %w", err))
		return []*venue.Venue{}
	}
	if venues == nil {
		return []*venue.Venue{}
	}
	return venues
}

func normalizeURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || strings.Contains(baseURL, "://") {
		return baseURL
	}
	if abs, err := filepath.Abs(baseURL); err == nil {
		baseURL = abs
	}
	return file.Scheme + "://" + filepath.ToSlash(baseURL)
}
