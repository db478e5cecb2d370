package stdflag

import (
	"flag"
	"fmt"

	"github.com/pressly/optparse"
)

// Registry builds an [optparse.Args] describing every flag defined on fs, in lexicographical order.
func Registry(fs *flag.FlagSet) optparse.Args {
	var args optparse.Args
	fs.VisitAll(func(f *flag.Flag) {
		arg := &optparse.Arg{
			Long:       f.Name,
			TakesValue: optparse.Necessary,
			Help:       f.Usage,
		}
		if len(f.Name) == 1 {
			arg.Short = f.Name[0]
		}
		if isBoolFlag(f) {
			arg.TakesValue = optparse.Forbidden
		}
		args = append(args, arg)
	})
	return args
}

// Apply sets every matched flag on fs, in command-line order, so later occurrences override earlier
// ones and repeatable [flag.Value]s see every value. Switches are set to "true".
func Apply(fs *flag.FlagSet, args optparse.Args, flags *optparse.MatchedFlags) error {
	for _, e := range flags.Entries() {
		arg, ok := args.Find(e.Flag)
		if !ok {
			return fmt.Errorf("flag %s is not in the registry", e.Flag)
		}
		value := "true"
		if e.HasValue {
			value = e.Value
		}
		if err := fs.Set(arg.Long, value); err != nil {
			return fmt.Errorf("invalid value %q for flag %s: %w", value, e.Flag, err)
		}
	}
	return nil
}

// Parse parses args against the flags defined on fs, sets the matched flags and returns the free
// arguments. Parse errors are returned as [optparse.ParseError]s.
//
// Unlike [flag.FlagSet.Parse], flags may appear after free arguments and are not recorded in
// [flag.FlagSet.Args].
func Parse(fs *flag.FlagSet, args []string) ([]string, error) {
	reg := Registry(fs)
	m, err := reg.Parse(args)
	if err != nil {
		return nil, err
	}
	if err := Apply(fs, reg, &m.Flags); err != nil {
		return nil, err
	}
	return m.Frees, nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
