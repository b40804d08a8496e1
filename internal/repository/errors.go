package repository

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is wrapped by LoadError when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// LoadError reports why the launch table could not be loaded.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %q: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(path, reason string, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}
