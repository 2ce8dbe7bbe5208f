// File: fake/allocator.go
// Package fake provides test doubles for slicepool consumers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"sync"

	"github.com/momentics/slicepool/api"
)

// CountingAllocator is a heap-backed api.RegionAllocator that records
// every bulk allocation request for assertions.
type CountingAllocator struct {
	mu    sync.Mutex
	sizes []int
}

var _ api.RegionAllocator = (*CountingAllocator)(nil)

// Allocate records the request and returns a zeroed heap slice.
func (a *CountingAllocator) Allocate(byteLength int) []byte {
	a.mu.Lock()
	a.sizes = append(a.sizes, byteLength)
	a.mu.Unlock()
	return make([]byte, byteLength)
}

// Sizes returns a copy of all recorded allocation sizes, in request order.
func (a *CountingAllocator) Sizes() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int, len(a.sizes))
	copy(out, a.sizes)
	return out
}

// Regions returns the number of bulk allocations performed.
func (a *CountingAllocator) Regions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.sizes)
}

// TotalBytes returns the sum of all recorded allocation sizes.
func (a *CountingAllocator) TotalBytes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := 0
	for _, n := range a.sizes {
		total += n
	}
	return total
}
