// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared across the library.

package api

import "fmt"

// Errors returned by pool construction and lease operations.
var (
	// ErrBufferReleased is returned by Resource after the lease has been
	// freed or discarded.
	ErrBufferReleased = fmt.Errorf("buffer already released")

	// ErrSliceSize rejects a non-positive slice size at construction.
	ErrSliceSize = fmt.Errorf("slice size must be greater than zero")

	// ErrSliceCount rejects a non-positive slice count at construction.
	ErrSliceCount = fmt.Errorf("slice count must be greater than zero")

	// ErrRegionSize rejects a maximum region size smaller than one slice.
	ErrRegionSize = fmt.Errorf("maximum region size must be greater than or equal to the slice size")
)
