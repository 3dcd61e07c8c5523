package sheet

import "errors"

var (
	// ErrNotRendered means a handle was used in class resolution before the
	// registry flushed it into CSS text.
	ErrNotRendered = errors.New("style has not been rendered yet")

	// ErrDuplicateRegistration means the same call-site identity registered a
	// second payload before the first one was rendered.
	ErrDuplicateRegistration = errors.New("already registered and not rendered")

	// ErrSelfReference means a variable assignment references the variable
	// being assigned, directly or through its fallback chain.
	ErrSelfReference = errors.New("variable assignment references itself")
)
