package logger

import "errors"

// ErrInvalidFields is recorded when a variadic field list is malformed,
// for example a key with no matching value.
var ErrInvalidFields = errors.New("invalid log fields")
