// SPDX-License-Identifier: MIT

// Package arrayptr provides ArrayPtr, a single-owner handle to one
// contiguous block of zero-valued slots.
//
// ArrayPtr is the backing store of vector.Vector. It knows nothing about
// logical size: it allocates exactly the requested number of slots, gives
// O(1) indexed access to them, and transfers or exchanges ownership of the
// block with another handle in O(1).
//
// Ownership rules:
//
//   - A block is owned by exactly one ArrayPtr at a time.
//   - MoveFrom takes the block from the source and leaves it empty.
//   - Swap exchanges blocks; no slot is copied.
//   - Release hands the block to the caller and leaves the handle empty.
//
// Go cannot forbid copying a struct, so "move-only" is a usage contract:
// never copy an ArrayPtr by value once it owns slots; pass *ArrayPtr.
//
// Errors:
//
//	ErrAllocationFailure - the requested slot count cannot be provided.
package arrayptr
