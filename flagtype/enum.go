package flagtype

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pressly/optparse"
)

// Enum returns the last value given to arg, which must be one of allowed. If the flag was not
// given, def is returned. Enum panics if def is not empty and not one of allowed, since that is a
// mistake in the program rather than in the user's input.
func Enum(m *optparse.MatchedFlags, arg *optparse.Arg, def string, allowed ...string) (string, error) {
	if def != "" && !slices.Contains(allowed, def) {
		panic(fmt.Sprintf("flagtype: default value %q is not in allowed values: %s",
			def, strings.Join(allowed, ", ")))
	}
	v, ok := m.Get(arg)
	if !ok {
		return def, nil
	}
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("flag %s: invalid value %q, must be one of: %s", arg, v, strings.Join(allowed, ", "))
	}
	return v, nil
}
