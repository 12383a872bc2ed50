package venuely

import (
	"context"
	"fmt"
)

// ShowCmd prints details of a single venue.
type ShowCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"yes"`
	} `positional-args:"yes"`
}

func (c *ShowCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := mount(ctx)
	if err != nil {
		return err
	}
	s.manager.ShowDetail(ctx, c.Args.ID)
	selected := s.manager.Selected()
	if selected == nil {
		return fmt.Errorf("venue not found: %s", c.Args.ID)
	}
	renderDetail(stdout, selected)
	return nil
}
