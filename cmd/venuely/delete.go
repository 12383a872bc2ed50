package venuely

import "context"

// DeleteCmd removes a venue.
type DeleteCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"yes"`
	} `positional-args:"yes"`
}

func (c *DeleteCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := mount(ctx)
	if err != nil {
		return err
	}
	s.manager.Delete(ctx, c.Args.ID)
	renderList(stdout, s.manager.Venues())
	return nil
}
