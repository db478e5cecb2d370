package optparse

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

// Exit codes returned by [ExitCode].
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitOptionsError = 3
)

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes the command. It returns an error if the command has not been parsed or if the
// command has no execution function.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, cmd *Command, options *RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cmd == nil {
		return errors.New("command is nil")
	}
	if cmd.state == nil {
		return errors.New("command not parsed")
	}
	if cmd.Exec == nil {
		return fmt.Errorf("command %q: no exec function defined", cmd.Name)
	}

	options = checkAndSetRunOptions(options)
	updateState(cmd.state, options)

	return run(ctx, cmd, cmd.state)
}

// ParseAndRun is a convenience function that combines [Parse] and [Run] into a single call. It
// parses the arguments, handles the help flag automatically (printing usage to stdout and
// returning nil), and then executes the command.
//
// This is the recommended entry point for most programs:
//
//	if err := optparse.ParseAndRun(ctx, cmd, os.Args[1:], nil); err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    os.Exit(optparse.ExitCode(err))
//	}
func ParseAndRun(ctx context.Context, cmd *Command, args []string, options *RunOptions) error {
	if err := Parse(cmd, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			options = checkAndSetRunOptions(options)
			fmt.Fprintln(options.Stdout, DefaultUsage(cmd))
			return nil
		}
		return err
	}
	return Run(ctx, cmd, options)
}

// ExitCode maps an error returned by [Parse], [Run] or [ParseAndRun] to a process exit status:
// [ExitSuccess] for nil, [ExitOptionsError] when the command line could not be parsed, and
// [ExitRuntimeError] for everything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var perr ParseError
	if errors.As(err, &perr) {
		return ExitOptionsError
	}
	return ExitRuntimeError
}

func run(ctx context.Context, cmd *Command, state *State) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			switch err := r.(type) {
			case error:
				retErr = fmt.Errorf("panic: %w\n\n%s", err, location(2))
			default:
				retErr = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return cmd.Exec(ctx, state)
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}

var (
	once         sync.Once
	goModuleName string
)

func getGoModuleName() string {
	once.Do(func() {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
			goModuleName = info.Main.Path
		}
	})
	return goModuleName
}

func location(skip int) string {
	var pcs [1]uintptr
	// Add 2 to skip this function and runtime.Callers.
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return "unknown:0"
	}

	frame, _ := runtime.CallersFrames(pcs[:n]).Next()

	// Function names carry the module path ("github.com/pressly/optparse.Run") and file paths are
	// absolute; trim both to keep the output short.
	mod := getGoModuleName()
	fn := strings.TrimPrefix(frame.Function, mod+"/")
	file := frame.File
	if idx := strings.Index(file, mod+"/"); mod != "" && idx != -1 {
		file = file[idx+len(mod)+1:]
	} else {
		file = file[strings.LastIndex(file, "/")+1:]
	}

	return fn + " " + file + ":" + strconv.Itoa(frame.Line)
}
