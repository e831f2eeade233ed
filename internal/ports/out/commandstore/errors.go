package commandstore

import "errors"

// ErrUnknownOperation is returned when an adapter does not recognize the
// requested operation name.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrConflict is returned when an operation violates a uniqueness rule, such
// as registering an email twice.
var ErrConflict = errors.New("conflicting row")
