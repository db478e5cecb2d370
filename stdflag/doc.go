// Package stdflag connects the standard library's flag package to optparse. It lets a program
// declare its flags on a [flag.FlagSet] as usual while parsing the command line with optparse's
// syntax: short clusters (-lv), attached values (-L2, --level=2), flags interleaved with free
// arguments, and "--" to end flag parsing.
//
// Boolean flags become switches that cannot take a value; every other flag needs one. Flags with a
// single-character name can be given in short form.
package stdflag
