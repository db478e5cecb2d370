package optparse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("print frees", func(t *testing.T) {
		t.Parallel()

		cmd := &Command{
			Name: "echo",
			Args: Args{{Short: 'n', Long: "no-newline"}},
			Exec: func(ctx context.Context, s *State) error {
				out := strings.Join(s.Args, " ")
				if !s.Flags.Has(&Arg{Short: 'n', Long: "no-newline"}) {
					out += "\n"
				}
				_, err := s.Stdout.Write([]byte(out))
				return err
			},
		}
		err := Parse(cmd, []string{"hello", "-n", "world"})
		require.NoError(t, err)

		output := bytes.NewBuffer(nil)
		err = Run(context.Background(), cmd, &RunOptions{Stdout: output})
		require.NoError(t, err)
		require.Equal(t, "hello world", output.String())
	})
	t.Run("parse and run", func(t *testing.T) {
		t.Parallel()
		var count int

		dryRun := &Arg{Long: "dry-run"}
		cmd := &Command{
			Name: "count",
			Args: Args{dryRun},
			Exec: func(ctx context.Context, s *State) error {
				if !s.Flags.Has(dryRun) {
					count++
				}
				return nil
			},
		}
		err := Parse(cmd, nil)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			err := Run(context.Background(), cmd, nil)
			require.NoError(t, err)
		}
		require.Equal(t, 3, count)

		err = ParseAndRun(context.Background(), cmd, []string{"--dry-run"}, nil)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})
	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand()
		output := bytes.NewBuffer(nil)
		err := ParseAndRun(context.Background(), cmd, []string{"--help"}, &RunOptions{Stdout: output})
		require.NoError(t, err)
		require.Contains(t, output.String(), "list directory contents")
		require.Contains(t, output.String(), "--level <value>")
	})
	t.Run("parse error from parse and run", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand()
		err := ParseAndRun(context.Background(), cmd, []string{"-L"}, nil)
		require.EqualError(t, err, `command "ls": flag -L needs a value`)
		require.Equal(t, ExitOptionsError, ExitCode(err))
	})
	t.Run("exec error", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand()
		err := ParseAndRun(context.Background(), cmd, nil, nil)
		require.EqualError(t, err, "not implemented")
		require.Equal(t, ExitRuntimeError, ExitCode(err))
	})
	t.Run("not parsed", func(t *testing.T) {
		t.Parallel()

		err := Run(context.Background(), newTestCommand(), nil)
		require.EqualError(t, err, "command not parsed")
		err = Run(context.Background(), nil, nil)
		require.EqualError(t, err, "command is nil")
	})
	t.Run("panic with error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		cmd := &Command{
			Name: "panicky",
			Exec: func(ctx context.Context, s *State) error { panic(boom) },
		}
		err := ParseAndRun(context.Background(), cmd, nil, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, boom)
		require.Contains(t, err.Error(), "panic: boom")
	})
	t.Run("panic with value", func(t *testing.T) {
		t.Parallel()

		cmd := &Command{
			Name: "panicky",
			Exec: func(ctx context.Context, s *State) error { panic(fmt.Sprint(42)) },
		}
		err := ParseAndRun(context.Background(), cmd, nil, nil)
		require.EqualError(t, err, "panic: 42")
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, ExitSuccess, ExitCode(nil))
	require.Equal(t, ExitRuntimeError, ExitCode(errors.New("disk on fire")))
	require.Equal(t, ExitOptionsError, ExitCode(&UnknownShortError{Attempt: 'q'}))
	require.Equal(t, ExitOptionsError, ExitCode(fmt.Errorf("wrapped: %w", &NeedsValueError{Flag: LongFlag("level")})))
}
