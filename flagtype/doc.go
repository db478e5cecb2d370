// Package flagtype turns the raw values collected by [optparse.Args.Parse] into typed
// configuration.
//
// Every function takes the [optparse.MatchedFlags] of a parse and the [optparse.Arg] to read, and
// follows the parser's "last one wins" rule for single-valued flags. A missing flag is not an
// error: the zero value (or the given default) is returned. An invalid value is reported with an
// error naming the flag.
//
// The following decoders are available:
//   - [String] - the last value as is
//   - [Int] - the last value parsed as a base-10 integer
//   - [Enum] - the last value, restricted to a predefined set
//   - [StringSlice] - every value, in command-line order
//   - [StringMap] - every value parsed as a key=value pair
//   - [URL] - the last value parsed as a URL with a scheme and host
//   - [Regexp] - the last value compiled as a regular expression
//
// Example:
//
//	m, err := args.Parse(os.Args[1:])
//	if err != nil {
//	    return err
//	}
//	level, err := flagtype.Int(&m.Flags, levelArg, 0)
//	sort, err := flagtype.Enum(&m.Flags, sortArg, "name", "name", "size", "modified")
//	ignores := flagtype.StringSlice(&m.Flags, ignoreArg)
package flagtype
