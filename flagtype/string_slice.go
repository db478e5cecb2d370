package flagtype

import (
	"strings"

	"github.com/pressly/optparse"
)

// StringSlice returns every value given to arg in command-line order, which allows repeatable
// flags like --ignore=foo --ignore=bar. If split is set, each value is also split on it, so
// --ignore=foo,bar works too.
func StringSlice(m *optparse.MatchedFlags, arg *optparse.Arg, split ...string) []string {
	vals := m.Values(arg)
	if len(split) == 0 {
		return vals
	}
	var out []string
	for _, v := range vals {
		out = append(out, splitAll(v, split)...)
	}
	return out
}

func splitAll(s string, seps []string) []string {
	parts := []string{s}
	for _, sep := range seps {
		var next []string
		for _, p := range parts {
			for _, q := range strings.Split(p, sep) {
				if q != "" {
					next = append(next, q)
				}
			}
		}
		parts = next
	}
	return parts
}
