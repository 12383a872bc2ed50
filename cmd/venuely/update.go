package venuely

import (
	"context"
	"fmt"

	"github.com/viant/venuely/pkg/venue"
)

// UpdateCmd edits a listed venue; only supplied fields change.
type UpdateCmd struct {
	Name        string `short:"n" long:"name" description:"venue name"`
	Location    string `short:"l" long:"location" description:"venue location"`
	Description string `short:"d" long:"description" description:"venue description"`
	Capacity    string `short:"c" long:"capacity" description:"venue capacity"`
	Args        struct {
		ID string `positional-arg-name:"id" required:"yes"`
	} `positional-args:"yes"`
}

func (c *UpdateCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := mount(ctx)
	if err != nil {
		return err
	}
	m := s.manager
	target := venue.Find(m.Venues(), c.Args.ID)
	if target == nil {
		return fmt.Errorf("venue not listed: %s", c.Args.ID)
	}
	m.StartEdit(target)
	for _, field := range []struct{ name, value string }{
		{"name", c.Name},
		{"location", c.Location},
		{"description", c.Description},
		{"capacity", c.Capacity},
	} {
		if field.value == "" {
			continue
		}
		if err := m.SetField(field.name, field.value); err != nil {
			m.CancelEdit()
			return err
		}
	}
	m.Submit(ctx)
	renderList(stdout, m.Venues())
	return nil
}
