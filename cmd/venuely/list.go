package venuely

import "context"

// ListCmd prints the venue list.
type ListCmd struct{}

func (c *ListCmd) Execute(_ []string) error {
	s, err := mount(context.Background())
	if err != nil {
		return err
	}
	renderList(stdout, s.manager.Venues())
	return nil
}
