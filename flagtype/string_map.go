package flagtype

import (
	"fmt"
	"strings"

	"github.com/pressly/optparse"
)

// StringMap parses every value given to arg as a key=value pair, like --env=HOME=/root
// --env=TERM=xterm. The value is split on the first "=", so values may contain more of them. Later
// occurrences of a key override earlier ones. It returns nil if the flag was not given.
func StringMap(m *optparse.MatchedFlags, arg *optparse.Arg) (map[string]string, error) {
	var out map[string]string
	for _, s := range m.Values(arg) {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("flag %s: invalid key=value pair: %q (missing '=')", arg, s)
		}
		if key == "" {
			return nil, fmt.Errorf("flag %s: invalid key=value pair: %q (empty key)", arg, s)
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[key] = value
	}
	return out, nil
}
