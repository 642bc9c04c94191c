// Package storage is the persistence gateway for reservations and the
// subscriber chat list. All SQL lives here; business validation does not.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an update or delete that matched no row, usually a
// card whose reservation was removed from another chat.
var ErrNotFound = errors.New("storage: no such row")

// Error wraps a failed store operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns a stable identifier used as err_code in logs.
func (e *Error) Code() string { return "STORAGE" }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
