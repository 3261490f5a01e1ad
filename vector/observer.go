package vector

// Observer receives growth events. Calls happen synchronously on the
// goroutine performing the mutation, after the event is final.
type Observer interface {
	// Reallocated is called after a new store was swapped in.
	// moved is the number of elements migrated from the old store.
	Reallocated(oldCapacity, newCapacity, moved int)

	// AllocationFailed is called when a store of requested slots could not
	// be provided. The Vector is unchanged at that point.
	AllocationFailed(requested int, err error)
}

type nopObserver struct{}

func (nopObserver) Reallocated(int, int, int)   {}
func (nopObserver) AllocationFailed(int, error) {}
