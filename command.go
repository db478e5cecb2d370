package optparse

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strings"

	"github.com/pressly/optparse/pkg/suggest"
)

// Command is a program built around a single [Args] registry. It ties the parser to an execution
// function and to the usage and exit-code conventions of a typical command-line tool.
type Command struct {
	// Name is a single word naming the program. It is used in usage text and error messages.
	Name string

	// Usage provides the command's full usage pattern.
	//
	// Example: "lsx [flags] [path...]"
	Usage string

	// ShortHelp is a brief description of the command's purpose, shown at the top of the usage
	// text.
	ShortHelp string

	// UsageFunc is an optional function that can be used to generate a custom usage string for the
	// command. When set, [DefaultUsage] returns its result.
	UsageFunc func(*Command) string

	// Args is the registry of flags the command accepts. If it contains an arg whose long name is
	// "help", giving that flag makes [Parse] return [flag.ErrHelp].
	Args Args

	// Exec defines the command's execution logic. It receives the parsed [State] and returns an
	// error if execution fails.
	Exec func(ctx context.Context, s *State) error

	state *State
}

// Parse validates the command and parses args, typically os.Args[1:], against its registry. Once
// parsing succeeds the command is ready to be executed with [Run].
//
// Errors from the parser are wrapped, so callers can still match them with [errors.As] against
// [ParseError] or one of its concrete types.
func Parse(cmd *Command, args []string) error {
	if cmd == nil {
		return errors.New("failed to parse: command is nil")
	}
	if err := validateCommand(cmd); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	m, err := cmd.Args.Parse(args)
	if err != nil {
		var unknown *UnknownArgumentError
		if errors.As(err, &unknown) {
			return cmd.formatUnknownArgumentError(unknown)
		}
		return fmt.Errorf("command %q: %w", cmd.Name, err)
	}
	cmd.state = &State{
		Args:  m.Frees,
		Flags: &m.Flags,
	}

	if help, ok := cmd.Args.findLong("help"); ok && m.Flags.Count(help) > 0 {
		return flag.ErrHelp
	}
	if cmd.Exec == nil {
		return fmt.Errorf("command %q: no exec function defined", cmd.Name)
	}
	return nil
}

func (a Args) findLong(name string) (*Arg, bool) {
	arg, err := a.lookupLong(name)
	return arg, err == nil
}

var validNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func validateCommand(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command has no name")
	}
	if !validNameRegex.MatchString(cmd.Name) {
		return fmt.Errorf("command %q: name must start with a letter and contain only letters, numbers, dashes (-) or underscores (_)", cmd.Name)
	}
	seen := make(map[string]bool, len(cmd.Args))
	for i, arg := range cmd.Args {
		if arg == nil {
			return fmt.Errorf("command %q: arg %d is nil", cmd.Name, i)
		}
		if !validNameRegex.MatchString(arg.Long) {
			return fmt.Errorf("command %q: arg %q: long name must start with a letter and contain only letters, numbers, dashes (-) or underscores (_)", cmd.Name, arg.Long)
		}
		if seen[arg.Long] {
			return fmt.Errorf("command %q: arg %q: declared more than once", cmd.Name, arg.Long)
		}
		seen[arg.Long] = true
		if arg.Short != 0 && !validShort(arg.Short) {
			return fmt.Errorf("command %q: arg %q: invalid short form %q", cmd.Name, arg.Long, rune(arg.Short))
		}
	}
	return nil
}

// validShort reports whether b can be typed as a short flag: printable ASCII, and not one of the
// bytes that carry meaning inside a cluster.
func validShort(b byte) bool {
	return b > ' ' && b < 0x7f && b != '-' && b != '='
}

func (c *Command) formatUnknownArgumentError(err *UnknownArgumentError) error {
	var known []string
	for _, arg := range c.Args {
		known = append(known, arg.Long)
	}
	suggestions := suggest.FindSimilar(err.Attempt, known, 3)
	if len(suggestions) > 0 {
		for i, s := range suggestions {
			suggestions[i] = "--" + s
		}
		return fmt.Errorf("command %q: %w. Did you mean one of these?\n\t%s",
			c.Name,
			err,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("command %q: %w", c.Name, err)
}
