package records

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned (wrapped in a LoadError) when no row carries both a URL and a name.
var ErrEmpty = errors.New("input must contain at least one URL and name")

type ErrorKind int

const (
	IOFailure ErrorKind = iota + 1
	ParseFailure
	Empty
)

func (k ErrorKind) String() string {
	switch k {
	case IOFailure:
		return "io failure"
	case ParseFailure:
		return "parse failure"
	case Empty:
		return "empty input"
	default:
		return "unknown"
	}
}

type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to load records from %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("failed to load records: %s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
