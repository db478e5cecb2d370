package optparse

import "io"

// State holds the result of parsing a [Command] and the streams its Exec function should use.
type State struct {
	// Args are the free arguments: everything that was not a flag or a flag's value.
	Args []string

	// Flags are the matched flags, queried with the same [Arg] values the registry was built from.
	Flags *MatchedFlags

	// Stdin, Stdout, and Stderr are the standard streams for the command. They are set by [Run].
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}
