package venuely

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/viant/venuely/pkg/venue"
	"github.com/viant/venuely/shared"
)

// descriptionWidth bounds the description column of the list view.
const descriptionWidth = 40

func renderList(w io.Writer, venues []*venue.Venue) {
	if len(venues) == 0 {
		fmt.Fprintln(w, "no venues")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tDESCRIPTION\tCAPACITY")
	for _, v := range venues {
		if v == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", v.Id, v.Name, v.Location, shared.Ellipsize(v.Description, descriptionWidth), v.Capacity)
	}
	_ = tw.Flush()
}

func renderDetail(w io.Writer, v *venue.Venue) {
	if v == nil {
		fmt.Fprintln(w, "venue not found")
		return
	}
	fmt.Fprintln(w, "Venue Details")
	fmt.Fprintf(w, "Name: %s\n", v.Name)
	fmt.Fprintf(w, "Location: %s\n", v.Location)
	fmt.Fprintf(w, "Description: %s\n", v.Description)
	fmt.Fprintf(w, "Capacity: %d\n", v.Capacity)
}

func renderForm(w io.Writer, form *venue.Venue, editing bool) {
	if editing {
		fmt.Fprintf(w, "Update Venue %s (cancel to discard)\n", form.Id)
	} else {
		fmt.Fprintln(w, "Create Venue")
	}
	fmt.Fprintf(w, "  name: %s\n", form.Name)
	fmt.Fprintf(w, "  location: %s\n", form.Location)
	fmt.Fprintf(w, "  description: %s\n", form.Description)
	fmt.Fprintf(w, "  capacity: %d\n", form.Capacity)
}
