// Package vector implements Vector, a generic growable array that owns one
// contiguous backing store (arrayptr.ArrayPtr) plus two counters: size and
// capacity.
//
// What you get:
//
//   - Construction: empty, sized (zero or given value), from a literal
//     sequence, or from a capacity hint (Reserve).
//   - Amortized O(1) PushBack; positional Insert/Erase in O(size-pos).
//   - Unchecked access (Get/Set/Ptr) and checked access (At/SetAt/PtrAt).
//   - Copy (Clone/Assign), move (Move/MoveAssign) and O(1) Swap.
//   - Index-based iterators stamped with a generation, plus range-over-func
//     sequences (All, Values, Backward).
//   - Equality and lexicographic ordering (Equal, Less, Compare, ...).
//
// Growth policy:
//
//	newCap = max(required, 2*capacity)   (1 when capacity == 0)
//
// so repeated PushBack walks capacities 0→1→2→4→8… Reserve(n) allocates
// exactly n. Growth always builds the new store completely before it is
// swapped in, so a failed allocation leaves the Vector untouched. A
// configured ceiling (WithMaxCapacity) clamps the doubled target but never
// below what the operation needs.
//
// Iterator invalidation:
//
// Every operation that reallocates, shifts elements or changes the size
// bumps the Vector's generation. Iterators taken earlier report
// Valid() == false and are rejected by InsertIter/EraseIter. Plain Get/Set
// through an iterator does not invalidate anything.
//
// Errors:
//
//	ErrOutOfRange        - checked access or position outside [0,size).
//	ErrAllocationFailure - the backing store cannot provide the slots.
//	ErrEmpty             - PopBack on an empty Vector.
//	ErrNilVector         - nil source passed to Assign/MoveAssign.
//	ErrStaleIterator     - iterator taken before the last invalidation.
//	ErrForeignIterator   - iterator belongs to another Vector.
//
// Concurrency: none. A Vector must not be mutated concurrently; concurrent
// readers are fine while no goroutine mutates it.
package vector
