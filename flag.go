package optparse

// TakesValue reports whether a flag must be given a value. It applies to both the short and the
// long form of a flag.
type TakesValue int

const (
	// Forbidden flags are switches; giving one a value is an error.
	Forbidden TakesValue = iota
	// Necessary flags must be followed by a value, either attached (--count=4, -c4, -c=4) or as
	// the next argument (--count 4, -c 4).
	Necessary
)

func (t TakesValue) String() string {
	switch t {
	case Forbidden:
		return "forbidden"
	case Necessary:
		return "necessary"
	default:
		return "unknown"
	}
}

// Arg describes one option a program accepts. Args are declared once, typically as package-level
// variables, and passed by pointer to both [Args] and the query methods of [MatchedFlags].
type Arg struct {
	// Short is the single-byte short form, matched by -x. Zero means the arg has no short form.
	Short byte

	// Long is the long form, matched by --name. Every arg must have one.
	Long string

	// TakesValue controls whether the arg needs a value.
	TakesValue TakesValue

	// Help is a one-line description shown in usage text. It has no effect on parsing.
	Help string
}

// String renders the arg the way it appears in diagnostics, for example "--count (-c)".
func (a *Arg) String() string {
	s := "--" + a.Long
	if a.Short != 0 {
		s += " (-" + string(a.Short) + ")"
	}
	return s
}

// Flag is the identity of a matched option: the short byte or the long name it was given as on the
// command line. Exactly one of Short and Long is set.
type Flag struct {
	Short byte
	Long  string
}

// ShortFlag returns the identity of a short flag.
func ShortFlag(b byte) Flag { return Flag{Short: b} }

// LongFlag returns the identity of a long flag.
func LongFlag(name string) Flag { return Flag{Long: name} }

// IsShort reports whether f was given in its short form.
func (f Flag) IsShort() bool { return f.Long == "" }

// Matches reports whether f identifies arg.
func (f Flag) Matches(arg *Arg) bool {
	if f.IsShort() {
		return arg.Short != 0 && arg.Short == f.Short
	}
	return arg.Long == f.Long
}

func (f Flag) String() string {
	if f.IsShort() {
		return "-" + string(f.Short)
	}
	return "--" + f.Long
}
