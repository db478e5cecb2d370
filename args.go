package optparse

// Args is the registry of every option a program accepts, in declaration order. It is built once
// and never modified; the same Args may be used for any number of [Args.Parse] calls.
//
// Long names are expected to be unique. Short forms are assumed to be unique but this is not
// checked: the first declared arg wins.
type Args []*Arg

// Find returns the arg that f identifies.
func (a Args) Find(f Flag) (*Arg, bool) {
	for _, arg := range a {
		if f.Matches(arg) {
			return arg, true
		}
	}
	return nil, false
}

func (a Args) lookupShort(b byte) (*Arg, error) {
	if b != 0 {
		for _, arg := range a {
			if arg.Short == b {
				return arg, nil
			}
		}
	}
	return nil, &UnknownShortError{Attempt: b}
}

func (a Args) lookupLong(name string) (*Arg, error) {
	for _, arg := range a {
		if arg.Long == name {
			return arg, nil
		}
	}
	return nil, &UnknownArgumentError{Attempt: name}
}
