package optparse

import "strings"

// Parse iterates over the raw command-line arguments, without the program name, and splits them
// into matched flags and free arguments.
//
// It supports the following syntax:
//
//	--long            a long flag
//	--long=value      a long flag with an attached value
//	--long value      a long flag taking the next argument as its value
//	-s                a short flag
//	-abc              a cluster of short flags
//	-abxvalue         a cluster whose last flag takes the rest of the argument as its value
//	-abx=value        a cluster whose last flag takes the value after the equals sign
//	-abx value        a cluster whose last flag takes the next argument as its value
//	--                end of flags; everything after it is free
//
// A lone "-" is a free argument. Arguments are treated as raw bytes and are never decoded, so file
// names that are not valid UTF-8 pass through unchanged.
//
// The first problem encountered is returned as a [ParseError] and nothing else is returned.
func (a Args) Parse(inputs []string) (*Matches, error) {
	p := &parser{args: a, inputs: inputs}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Matches{
		Flags: MatchedFlags{entries: p.entries},
		Frees: p.frees,
	}, nil
}

// parser holds the state of a single Parse call.
type parser struct {
	args    Args
	inputs  []string
	pos     int
	entries []Entry
	frees   []string
}

// next consumes the following input, for flags whose value was not attached.
func (p *parser) next() (string, bool) {
	if p.pos >= len(p.inputs) {
		return "", false
	}
	s := p.inputs[p.pos]
	p.pos++
	return s, true
}

func (p *parser) record(f Flag) {
	p.entries = append(p.entries, Entry{Flag: f})
}

func (p *parser) recordValue(f Flag, value string) {
	p.entries = append(p.entries, Entry{Flag: f, Value: value, HasValue: true})
}

func (p *parser) run() error {
	parsing := true
	for {
		input, ok := p.next()
		if !ok {
			return nil
		}
		switch {
		case !parsing:
			p.frees = append(p.frees, input)
		case input == "--":
			// "--" lets a file named "--long" be given as "-- --long".
			parsing = false
		case strings.HasPrefix(input, "--"):
			if err := p.parseLong(input[2:]); err != nil {
				return err
			}
		case strings.HasPrefix(input, "-") && input != "-":
			if err := p.parseShort(input[1:]); err != nil {
				return err
			}
		default:
			p.frees = append(p.frees, input)
		}
	}
}

func (p *parser) parseLong(name string) error {
	if before, after, ok := splitOnEquals(name); ok {
		arg, err := p.args.lookupLong(before)
		if err != nil {
			return err
		}
		f := LongFlag(arg.Long)
		if arg.TakesValue == Forbidden {
			return &ForbiddenValueError{Flag: f}
		}
		p.recordValue(f, after)
		return nil
	}

	arg, err := p.args.lookupLong(name)
	if err != nil {
		return err
	}
	f := LongFlag(arg.Long)
	if arg.TakesValue == Forbidden {
		p.record(f)
		return nil
	}
	value, ok := p.next()
	if !ok {
		return &NeedsValueError{Flag: f}
	}
	p.recordValue(f, value)
	return nil
}

// parseShort handles a cluster of one or more short flags, without the leading dash.
//
//	-x=abc      x=abc
//	-abcx=fgh   a, b, c, x=fgh
//	-abxdef     a, b, x=def
//	-abx def    a, b, x=def
//	-abx        error if there is no next argument
func (p *parser) parseShort(cluster string) error {
	if before, after, ok := splitOnEquals(cluster); ok {
		last := len(before) - 1
		// Only the byte right before the equals can take the value.
		for i := 0; i < last; i++ {
			arg, err := p.args.lookupShort(before[i])
			if err != nil {
				return err
			}
			f := ShortFlag(before[i])
			if arg.TakesValue == Necessary {
				return &NeedsValueError{Flag: f}
			}
			p.record(f)
		}
		arg, err := p.args.lookupShort(before[last])
		if err != nil {
			return err
		}
		f := ShortFlag(arg.Short)
		if arg.TakesValue == Forbidden {
			return &ForbiddenValueError{Flag: f}
		}
		p.recordValue(f, after)
		return nil
	}

	for i := 0; i < len(cluster); i++ {
		arg, err := p.args.lookupShort(cluster[i])
		if err != nil {
			return err
		}
		f := ShortFlag(cluster[i])
		if arg.TakesValue == Forbidden {
			p.record(f)
			continue
		}
		if i < len(cluster)-1 {
			p.recordValue(f, cluster[i+1:])
			return nil
		}
		value, ok := p.next()
		if !ok {
			return &NeedsValueError{Flag: f}
		}
		p.recordValue(f, value)
	}
	return nil
}

// splitOnEquals splits s on its first "=". It reports false if there is no "=" or if either side
// would be empty.
func splitOnEquals(s string) (before, after string, ok bool) {
	i := strings.IndexByte(s, '=')
	if i < 1 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
