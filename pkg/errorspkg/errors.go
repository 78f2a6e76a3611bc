// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error.
var ErrInternal = errors.New("internal")

// ErrConflict indicates that a conditional balance write lost against a
// concurrent mutation of the same row.
var ErrConflict = errors.New("concurrent balance update")
