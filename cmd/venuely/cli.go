package venuely

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	vlog "github.com/viant/venuely/internal/log"
)

var (
	// stdout receives rendered views; replaced in tests.
	stdout io.Writer = os.Stdout
	// stderr receives --diag events; replaced in tests.
	stderr io.Writer = os.Stderr
	// stdin feeds the interactive console; replaced in tests.
	stdin io.Reader = os.Stdin
	// cliOptions holds global flags of the current invocation.
	cliOptions = &Options{}
)

// Run parses flags and executes the selected command.
func Run(args []string) {
	if err := run(args); err != nil {
		// flags already prints user-friendly message; we only exit with code 1
		log.Fatalf("%v", err)
	}
}

func run(args []string) error {
	opts := &Options{}
	opts.Init(commandName(args))
	cliOptions = opts

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	executed := false
	var stopDiag func()
	defer func() {
		if stopDiag != nil {
			stopDiag()
		}
	}()
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		executed = true
		if opts.Diag {
			stopDiag = vlog.FileSink(stderr)
		}
		return cmd.Execute(args)
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	switch {
	case opts.Version:
		// Global version flag: print and exit successfully.
		fmt.Fprintln(stdout, Version())
	case !executed:
		parser.WriteHelp(stdout)
	}
	return nil
}

// commandName returns the first argument naming a sub-command so that
// global flags may precede it.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "-f", "--config":
			i++
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		return a
	}
	return ""
}
