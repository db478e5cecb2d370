package optparse

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageGeneration(t *testing.T) {
	t.Parallel()

	t.Run("default usage with no flags", func(t *testing.T) {
		t.Parallel()

		cmd := &Command{
			Name: "simple",
			Exec: func(ctx context.Context, s *State) error { return nil },
		}
		output := DefaultUsage(cmd)
		require.Equal(t, "Usage:\n  simple [args...]", output)
	})
	t.Run("usage with flags", func(t *testing.T) {
		t.Parallel()

		output := DefaultUsage(newTestCommand())
		require.Equal(t, strings.Join([]string{
			"list directory contents",
			"",
			"Usage:",
			"  ls [flags] [args...]",
			"",
			"Flags:",
			"  -a, --all              show hidden files",
			"      --color <value>    when to use terminal colors",
			"  -h, --help             show this help",
			"  -L, --level <value>    limit the depth of recursion",
			"  -l, --long             use a long listing format",
		}, "\n"), output)
	})
	t.Run("custom usage pattern", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand()
		cmd.Usage = "ls [flags] [path...]"
		output := DefaultUsage(cmd)
		require.Contains(t, output, "Usage:\n  ls [flags] [path...]\n")
	})
	t.Run("usage func", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand()
		cmd.UsageFunc = func(c *Command) string { return "custom usage for " + c.Name }
		require.Equal(t, "custom usage for ls", DefaultUsage(cmd))
	})
	t.Run("long help wraps", func(t *testing.T) {
		t.Parallel()

		cmd := &Command{
			Name: "wrap",
			Args: Args{{Long: "x", Help: strings.Repeat("word ", 30)}},
		}
		output := DefaultUsage(cmd)
		lines := strings.Split(output, "\n")
		require.Greater(t, len(lines), 5)
		for _, line := range lines {
			require.LessOrEqual(t, len(line), 80, line)
		}
		// Continuation lines are indented past the flag names.
		require.True(t, strings.HasPrefix(lines[len(lines)-1], strings.Repeat(" ", 13)))
	})
	t.Run("nil command", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, DefaultUsage(nil))
	})
}
