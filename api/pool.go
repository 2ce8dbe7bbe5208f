// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core contracts of the slice pool: the pool itself, the leased buffer
// handle it hands out, the live view over a lease's byte range, and the
// bulk allocator collaborator that provides backing regions.

package api

// Buffer is the live view over one leased slice. Views produced over time
// for the same slice share the underlying bytes, but each view's slice
// header is private to the holder.
type Buffer interface {
	// Bytes returns the view's byte range. Writes through the returned
	// slice are visible to every later view over the same slice.
	Bytes() []byte

	// Len returns the fixed length of the view in bytes.
	Len() int

	// Copy returns a deep copy of the view contents as a standalone slice.
	Copy() []byte
}

// Pooled is a leased buffer. Exactly one release transition is honored per
// lease; any further Free or Discard calls are no-ops.
type Pooled interface {
	// Resource returns the live view, or ErrBufferReleased after the
	// lease has been freed or discarded.
	Resource() (Buffer, error)

	// Free returns the slice to the pool immediately. The caller attests
	// that nothing will touch the buffer's bytes afterwards.
	Free()

	// Discard detaches the view and defers recycling until the runtime
	// proves the view unreachable. Use when the bytes were handed to code
	// outside the caller's control.
	Discard()
}

// Pool hands out fixed-size leased buffers backed by pre-partitioned
// regions.
type Pool interface {
	// Allocate pops a free slice and wraps it in a lease. Returns
	// (nil, false) when the pool is exhausted; callers apply their own
	// retry or backpressure policy.
	Allocate() (Pooled, bool)

	// Stats exposes allocation/reclamation counters for observability.
	Stats() PoolStats
}

// RegionAllocator provides contiguous backing storage for pool regions.
// Implementations must return a slice of exactly byteLength bytes.
type RegionAllocator interface {
	Allocate(byteLength int) []byte
}

// PoolStats aggregates pool accounting.
type PoolStats struct {
	// TotalSlices is the fixed capacity set at construction.
	TotalSlices int
	// Free is the current free-list length.
	Free int
	// TotalAlloc counts successful Allocate calls.
	TotalAlloc int64
	// TotalFree counts slices returned to the free list via any path.
	TotalFree int64
	// InUse is TotalAlloc - TotalFree; discarded-but-uncollected slices
	// count as in use.
	InUse int64
	// Discarded counts leases released through Discard.
	Discarded int64
	// Reclaimed counts discarded slices recycled by the monitor.
	Reclaimed int64
}
