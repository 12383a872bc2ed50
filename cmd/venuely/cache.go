package venuely

import (
	"context"
	"encoding/json"
	"fmt"
)

// CacheCmd groups local cache maintenance commands.
type CacheCmd struct {
	Show  *CacheShowCmd  `command:"show" description:"Print the cached venue collection as JSON"`
	Clear *CacheClearCmd `command:"clear" description:"Remove the cached venue collection"`
}

type CacheShowCmd struct{}

func (c *CacheShowCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	venues := s.storage.Load(ctx, s.config.Cache.Key)
	data, err := json.MarshalIndent(venues, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

type CacheClearCmd struct{}

func (c *CacheClearCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	s.storage.Clear(ctx, s.config.Cache.Key)
	fmt.Fprintf(stdout, "cleared %s\n", s.storage.URL(s.config.Cache.Key))
	return nil
}
