package app

import "errors"

var (
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrMissingComponent indicates Options lacks a required component.
	ErrMissingComponent = errors.New("component not provided")
)

// InitError reports a component that could not be acquired at startup.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
