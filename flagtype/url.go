package flagtype

import (
	"fmt"
	"net/url"

	"github.com/pressly/optparse"
)

// URL parses the last value given to arg as a URL. The URL must have both a scheme and a host. It
// returns nil if the flag was not given.
func URL(m *optparse.MatchedFlags, arg *optparse.Arg) (*url.URL, error) {
	s, ok := m.Get(arg)
	if !ok {
		return nil, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("flag %s: invalid URL %q: %w", arg, s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("flag %s: invalid URL %q: must have a scheme and host", arg, s)
	}
	return u, nil
}
