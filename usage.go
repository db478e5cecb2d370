package optparse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pressly/optparse/pkg/textutil"
)

// DefaultUsage returns the default usage string for the command. It includes the command's short
// help, usage pattern and flags. If the command has a UsageFunc, its result is returned instead.
func DefaultUsage(cmd *Command) string {
	if cmd == nil {
		return ""
	}
	if cmd.UsageFunc != nil {
		return cmd.UsageFunc(cmd)
	}

	var b strings.Builder

	if cmd.ShortHelp != "" {
		b.WriteString(cmd.ShortHelp)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n")
	if cmd.Usage != "" {
		b.WriteString("  " + cmd.Usage + "\n")
	} else {
		usage := cmd.Name
		if len(cmd.Args) > 0 {
			usage += " [flags]"
		}
		b.WriteString("  " + usage + " [args...]\n")
	}

	if len(cmd.Args) > 0 {
		b.WriteString("\nFlags:\n")
		writeFlagSection(&b, cmd.Args)
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeFlagSection lists every arg sorted by long name, with help text wrapped to fit 80 columns.
func writeFlagSection(b *strings.Builder, args Args) {
	sorted := slices.Clone(args)
	slices.SortFunc(sorted, func(a, b *Arg) int {
		return cmp.Compare(a.Long, b.Long)
	})

	names := make([]string, len(sorted))
	maxLen := 0
	for i, arg := range sorted {
		names[i] = flagUsageName(arg)
		maxLen = max(maxLen, len(names[i]))
	}

	nameWidth := maxLen + 4
	wrapWidth := 80 - nameWidth - 2

	for i, arg := range sorted {
		if arg.Help == "" {
			fmt.Fprintf(b, "  %s\n", names[i])
			continue
		}
		lines := textutil.Wrap(arg.Help, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(names[i])+4)
		fmt.Fprintf(b, "  %s%s%s\n", names[i], padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

func flagUsageName(arg *Arg) string {
	name := "    --" + arg.Long
	if arg.Short != 0 {
		name = "-" + string(arg.Short) + ", --" + arg.Long
	}
	if arg.TakesValue == Necessary {
		name += " <value>"
	}
	return name
}
