package venuely

import "context"

// CreateCmd submits a new venue.
type CreateCmd struct {
	Name        string `short:"n" long:"name" description:"venue name" required:"yes"`
	Location    string `short:"l" long:"location" description:"venue location" required:"yes"`
	Description string `short:"d" long:"description" description:"venue description" required:"yes"`
	Capacity    string `short:"c" long:"capacity" description:"venue capacity" required:"yes"`
}

func (c *CreateCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := mount(ctx)
	if err != nil {
		return err
	}
	m := s.manager
	m.CancelEdit()
	for _, field := range []struct{ name, value string }{
		{"name", c.Name},
		{"location", c.Location},
		{"description", c.Description},
		{"capacity", c.Capacity},
	} {
		if err := m.SetField(field.name, field.value); err != nil {
			return err
		}
	}
	m.Submit(ctx)
	renderList(stdout, m.Venues())
	return nil
}
