package optparse

import (
	"fmt"
	"strings"
)

// ParseError is a problem with the user's input that meant it could not be parsed into a coherent
// list of flags. Every error returned by [Args.Parse] is a ParseError; use [errors.As] with one of
// the concrete types to inspect it.
type ParseError interface {
	error
	parseError()
}

// NeedsValueError is returned when a flag that has to take a value was not given one.
type NeedsValueError struct {
	Flag Flag
}

func (e *NeedsValueError) Error() string {
	return fmt.Sprintf("flag %s needs a value", e.Flag)
}

// ForbiddenValueError is returned when a flag that cannot take a value was given one.
type ForbiddenValueError struct {
	Flag Flag
}

func (e *ForbiddenValueError) Error() string {
	return fmt.Sprintf("flag %s cannot take a value", e.Flag)
}

// UnknownShortError is returned when a short flag, alone or in a cluster, is not in the registry.
type UnknownShortError struct {
	Attempt byte
}

func (e *UnknownShortError) Error() string {
	return fmt.Sprintf("unknown argument -%c", rune(e.Attempt))
}

// UnknownArgumentError is returned when a long flag is not in the registry. Attempt holds the name
// exactly as given, which is not guaranteed to be valid UTF-8.
type UnknownArgumentError struct {
	Attempt string
}

func (e *UnknownArgumentError) Error() string {
	return "unknown argument --" + strings.ToValidUTF8(e.Attempt, "�")
}

func (*NeedsValueError) parseError()      {}
func (*ForbiddenValueError) parseError()  {}
func (*UnknownShortError) parseError()    {}
func (*UnknownArgumentError) parseError() {}
