package service

import "errors"

// ErrNotFound reports a record that is absent or not owned by the caller.
// No state changes when it is returned.
var ErrNotFound = errors.New("not found")

// ErrValidation tags caller mistakes (malformed month key, non-positive
// amount, missing field). Wrap it with fmt.Errorf("%w: ...").
var ErrValidation = errors.New("validation failed")
