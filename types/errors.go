// errors.go defines the error types shared by all the clipfunc packages.

package types

import (
	"fmt"
)

// ErrInvalidConfig is returned when a combination of parameters is
// rejected before any processing starts.
type ErrInvalidConfig struct {
	Func   string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Func, e.Reason)
}

type ErrInvalidRange struct {
	Range Range
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range %s: start is greater than end", e.Range)
}

type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d is out of range [0, %d)", e.Index, e.Length)
}

// ErrDependencyUnavailable is returned when an external collaborator
// (a decoding backend, a playlist reader, etc) required for the
// operation was not provided.
type ErrDependencyUnavailable struct {
	Func       string
	Dependency string
}

func (e ErrDependencyUnavailable) Error() string {
	return fmt.Sprintf("%s: missing dependency '%s'", e.Func, e.Dependency)
}
