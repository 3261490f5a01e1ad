// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ...". Methods wrap sentinels once
// with vectorErrorf; callers match with errors.Is.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplevector/arrayptr"
)

var (
	// ErrOutOfRange indicates an index or position outside the valid range.
	// Checked accessors (At/SetAt/PtrAt) and positional mutators return it.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocationFailure is the backing store's sentinel, propagated unchanged.
	ErrAllocationFailure = arrayptr.ErrAllocationFailure

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrStaleIterator indicates an iterator taken before the last invalidating operation.
	ErrStaleIterator = errors.New("vector: stale iterator")

	// ErrForeignIterator indicates an iterator that belongs to a different Vector.
	ErrForeignIterator = errors.New("vector: iterator belongs to another vector")
)

// method tags used in error wrappers
const (
	ctxAt         = "At"
	ctxSetAt      = "SetAt"
	ctxPtrAt      = "PtrAt"
	ctxInsert     = "Insert"
	ctxErase      = "Erase"
	ctxPopBack    = "PopBack"
	ctxResize     = "Resize"
	ctxInsertIter = "InsertIter"
	ctxEraseIter  = "EraseIter"
	ctxAssign     = "Assign"
	ctxMoveAssign = "MoveAssign"
)

// vectorErrorf wraps a sentinel with the method name and the offending index.
func vectorErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}
