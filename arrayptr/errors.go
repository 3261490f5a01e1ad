// SPDX-License-Identifier: MIT

package arrayptr

import (
	"errors"
	"fmt"
)

// ErrAllocationFailure is returned when a block of the requested size cannot
// be provided: negative counts, counts above the configured ceiling, or a
// runtime refusal to allocate.
var ErrAllocationFailure = errors.New("arrayptr: allocation failure")

// allocErrorf attaches the requested slot count and the active ceiling.
func allocErrorf(n, limit int) error {
	return fmt.Errorf("arrayptr: cannot allocate %d slots (limit %d): %w", n, limit, ErrAllocationFailure)
}
