// Package commands parses console lines of the form "/name -flag value arg" and dispatches them
// to registered handlers.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const Prefix = "/"

var (
	ErrMissingCommand = errors.New("missing command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a console command with its own flags. Run is called after the FlagSet has parsed the
// arguments and may read both flags and fs.Args(). Commands registered with RegisterArgs skip
// flag parsing and get the raw arguments in RunArgs instead.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
	RunArgs func(args []string) error
}

// Registry holds commands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds or replaces a command. fs may be nil for commands that take no flags. Flag
// parse errors are returned rather than printed.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// RegisterArgs adds or replaces a command whose arguments are passed through unparsed, so
// values such as "-10" are not mistaken for flags.
func (r *Registry) RegisterArgs(name, summary string, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, RunArgs: run}
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "/name  summary" line per command, sorted by name.
func (r *Registry) Help() []string {
	out := make([]string, 0, len(r.cmds))
	for _, n := range r.Names() {
		out = append(out, fmt.Sprintf("%s%s  %s", Prefix, n, r.cmds[n].Summary))
	}
	return out
}

// Parse splits a console line into command tokens. ok is false when the line is not a command.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return nil, false
	}
	return strings.Fields(line[len(Prefix):]), true
}

// Execute runs args[0] with args[1:] as its flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if cmd.RunArgs != nil {
		return cmd.RunArgs(args[1:])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}
