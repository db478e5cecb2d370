package flagtype

import (
	"fmt"
	"strconv"

	"github.com/pressly/optparse"
)

// String returns the last value given to arg, or def if it was not given.
func String(m *optparse.MatchedFlags, arg *optparse.Arg, def string) string {
	if v, ok := m.Get(arg); ok {
		return v
	}
	return def
}

// Int returns the last value given to arg parsed as a base-10 integer, or def if it was not given.
func Int(m *optparse.MatchedFlags, arg *optparse.Arg, def int) (int, error) {
	v, ok := m.Get(arg)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("flag %s: invalid number %q", arg, v)
	}
	return n, nil
}
