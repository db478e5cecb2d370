package flagtype

import (
	"fmt"
	"regexp"

	"github.com/pressly/optparse"
)

// Regexp compiles the last value given to arg as a regular expression. It returns nil if the flag
// was not given.
func Regexp(m *optparse.MatchedFlags, arg *optparse.Arg) (*regexp.Regexp, error) {
	s, ok := m.Get(arg)
	if !ok {
		return nil, nil
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", arg, err)
	}
	return re, nil
}
