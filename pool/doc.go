// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity slab allocator for byte-range buffers. Construction
// partitions the requested capacity into a small number of large backing
// regions, carves each region into fixed-size slices, and serves slices
// as short-lived leases through a lock-free free list. Leases are
// reclaimed explicitly via Free, or through a garbage-collection safety
// net via Discard. See slicepool.go, lease.go, reclaim.go.
package pool
