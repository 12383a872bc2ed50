package venuely

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/viant/venuely/pkg/venue"
	svc "github.com/viant/venuely/service/venue"
)

const consoleHelp = `commands:
  list                 show venues
  reload               reload venues from the remote store
  show <id>            show venue details
  close                close venue details
  edit <id>            load a listed venue into the form
  set <field> <value>  set a form field (name, location, description, capacity)
  cancel               cancel edit and reset the form
  submit               create or update the venue from the form
  delete <id>          delete a venue
  form                 show the form
  help                 show this help
  quit                 leave the console`

// ConsoleCmd runs an interactive venue management session.
type ConsoleCmd struct{}

func (c *ConsoleCmd) Execute(_ []string) error {
	ctx := context.Background()
	s, err := mount(ctx)
	if err != nil {
		return err
	}
	renderList(stdout, s.manager.Venues())
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return scanner.Err()
		}
		if quit := dispatch(ctx, s.manager, scanner.Text()); quit {
			return nil
		}
	}
}

// dispatch applies a single console line to m; it returns true on quit.
func dispatch(ctx context.Context, m *svc.Manager, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	arg := func() string {
		if len(args) == 0 {
			return ""
		}
		return args[0]
	}
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(stdout, consoleHelp)
	case "list", "ls":
		renderList(stdout, m.Venues())
	case "reload":
		m.Load(ctx)
		renderList(stdout, m.Venues())
	case "show":
		if arg() == "" {
			fmt.Fprintln(stdout, "usage: show <id>")
			return false
		}
		m.ShowDetail(ctx, arg())
		renderDetail(stdout, m.Selected())
	case "close":
		m.CloseDetail()
	case "edit":
		target := venue.Find(m.Venues(), arg())
		if target == nil {
			fmt.Fprintf(stdout, "venue not listed: %s\n", arg())
			return false
		}
		m.StartEdit(target)
		renderForm(stdout, m.Form(), m.Editing())
	case "set":
		if len(args) < 1 {
			fmt.Fprintln(stdout, "usage: set <field> <value>")
			return false
		}
		if err := m.SetField(args[0], afterFields(line, 2)); err != nil {
			fmt.Fprintln(stdout, err)
			return false
		}
		renderForm(stdout, m.Form(), m.Editing())
	case "cancel":
		m.CancelEdit()
		renderForm(stdout, m.Form(), m.Editing())
	case "form":
		renderForm(stdout, m.Form(), m.Editing())
	case "submit":
		m.Submit(ctx)
		renderList(stdout, m.Venues())
	case "delete", "rm":
		if arg() == "" {
			fmt.Fprintln(stdout, "usage: delete <id>")
			return false
		}
		m.Delete(ctx, arg())
		renderList(stdout, m.Venues())
	default:
		fmt.Fprintf(stdout, "unknown command: %s (type help)\n", cmd)
	}
	return false
}

// afterFields returns line with its first n whitespace separated fields
// removed, keeping the spacing of the remainder.
func afterFields(line string, n int) string {
	rest := line
	for i := 0; i < n; i++ {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		rest = rest[idx:]
	}
	return strings.TrimRight(strings.TrimLeftFunc(rest, unicode.IsSpace), "\r\n")
}
