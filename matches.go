package optparse

// Matches is the result of parsing the user's command-line arguments.
type Matches struct {
	// Flags are the flags that were parsed from the user's input.
	Flags MatchedFlags

	// Frees are the arguments that were not matched as flags or flag values, as well as everything
	// after "--", in the order they were given. Usually these are file names.
	Frees []string
}

// Entry is one flag occurrence on the command line.
type Entry struct {
	Flag Flag

	// Value is the value given to the flag. It is only meaningful when HasValue is true, and it is
	// not guaranteed to be valid UTF-8.
	Value    string
	HasValue bool
}

// MatchedFlags is the ordered log of every flag occurrence, short and long together. Keeping them
// in one list is what lets later flags take priority over earlier ones regardless of the form they
// were given in.
//
// Has and Get only see entries of the matching kind: asking Has about a flag that takes a value, or
// Get about one that does not, always reports nothing.
type MatchedFlags struct {
	entries []Entry
}

// Has reports whether arg was given as a switch, without a value.
func (m *MatchedFlags) Has(arg *Arg) bool {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if e := m.entries[i]; !e.HasValue && e.Flag.Matches(arg) {
			return true
		}
	}
	return false
}

// Get returns the value of the last occurrence of arg that carried a value.
func (m *MatchedFlags) Get(arg *Arg) (string, bool) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if e := m.entries[i]; e.HasValue && e.Flag.Matches(arg) {
			return e.Value, true
		}
	}
	return "", false
}

// Count returns the number of times arg was given, with or without a value.
func (m *MatchedFlags) Count(arg *Arg) int {
	var n int
	for _, e := range m.entries {
		if e.Flag.Matches(arg) {
			n++
		}
	}
	return n
}

// Values returns every value given to arg, in the order they appeared. It is useful for repeatable
// flags such as --ignore a --ignore b.
func (m *MatchedFlags) Values(arg *Arg) []string {
	var vals []string
	for _, e := range m.entries {
		if e.HasValue && e.Flag.Matches(arg) {
			vals = append(vals, e.Value)
		}
	}
	return vals
}

// Entries returns a copy of every flag occurrence in command-line order.
func (m *MatchedFlags) Entries() []Entry {
	if len(m.entries) == 0 {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of flag occurrences.
func (m *MatchedFlags) Len() int {
	return len(m.entries)
}
