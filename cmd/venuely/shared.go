package venuely

import (
	"context"

	client "github.com/viant/venuely/client/venue"
	"github.com/viant/venuely/internal/cache"
	"github.com/viant/venuely/internal/config"
	svc "github.com/viant/venuely/service/venue"
)

// session bundles the manager with the adapters it was built from.
type session struct {
	config  *config.Config
	storage *cache.Store
	manager *svc.Manager
}

// newSession loads the config referenced by global flags and wires the
// remote client, the cache store and the manager.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(ctx, cliOptions.Config)
	if err != nil {
		return nil, err
	}
	remote := client.New(cfg.Endpoint, client.WithTimeout(cfg.Timeout))
	storage := cache.New(cfg.Cache.URL)
	return &session{
		config:  cfg,
		storage: storage,
		manager: svc.New(remote, storage, svc.WithKey(cfg.Cache.Key)),
	}, nil
}

// mount creates a session and loads the venue list, as the view does when shown.
func mount(ctx context.Context) (*session, error) {
	s, err := newSession(ctx)
	if err != nil {
		return nil, err
	}
	s.manager.Load(ctx)
	return s, nil
}
