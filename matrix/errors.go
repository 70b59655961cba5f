// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates that a nil *core.Graph was passed into a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownKind is returned when decoding a Distance with an unknown tag.
	ErrUnknownKind = errors.New("matrix: unknown distance kind")
)

// matrixErrorf wraps err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
