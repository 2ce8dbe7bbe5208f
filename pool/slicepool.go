// File: pool/slicepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlicePool carves a small number of large backing regions into many
// fixed-size slices and hands them out as leases through a lock-free
// free list.

package pool

import (
	"sync/atomic"

	"github.com/momentics/slicepool/api"
	"github.com/momentics/slicepool/core/concurrency"
)

// SlicePool is a fixed-capacity slab allocator for byte-range buffers.
// All methods are safe for concurrent use without external locking.
type SlicePool struct {
	sliceSize  int
	sliceCount int

	// regions hold the backing storage alive for the pool's lifetime.
	regions  []*region
	freeList *concurrency.LockFreeQueue[*slice]

	alloc         api.RegionAllocator
	reclaimNotify func(n int)

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	discarded  atomic.Int64
	reclaimed  atomic.Int64
}

var _ api.Pool = (*SlicePool)(nil)

// New constructs a pool of sliceCount slices of sliceSize bytes each, with
// no single backing allocation exceeding maxRegionSize bytes. The free
// list ends with exactly sliceCount entries.
func New(sliceSize, sliceCount, maxRegionSize int, opts ...Option) (*SlicePool, error) {
	if sliceSize <= 0 {
		return nil, api.ErrSliceSize
	}
	if sliceCount <= 0 {
		return nil, api.ErrSliceCount
	}
	if maxRegionSize < sliceSize {
		return nil, api.ErrRegionSize
	}

	p := &SlicePool{
		sliceSize:  sliceSize,
		sliceCount: sliceCount,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.alloc == nil {
		p.alloc = defaultRegionAllocator()
	}

	// Partitioning is driven by slice counts so the pool always ends up
	// with exactly sliceCount slices and sliceSize*sliceCount backing
	// bytes, even when maxRegionSize is not a multiple of sliceSize.
	slicesPerRegion := maxRegionSize / sliceSize
	wholeRegions := sliceCount / slicesPerRegion
	remainder := sliceCount % slicesPerRegion

	p.freeList = concurrency.NewLockFreeQueue[*slice](sliceCount)
	for i := 0; i < wholeRegions; i++ {
		p.addRegion(slicesPerRegion)
	}
	if remainder > 0 {
		p.addRegion(remainder)
	}
	return p, nil
}

// addRegion allocates one backing region holding n slices and queues every
// slice onto the free list.
func (p *SlicePool) addRegion(n int) {
	r := &region{data: p.alloc.Allocate(n * p.sliceSize)}
	p.regions = append(p.regions, r)
	for j := 0; j < n; j++ {
		p.freeList.Enqueue(&slice{owner: r, offset: j * p.sliceSize, size: p.sliceSize})
	}
}

// Allocate pops a free slice and wraps it in a lease with a fresh view.
// Returns (nil, false) when no capacity is available; this is an expected
// outcome, not an error.
func (p *SlicePool) Allocate() (api.Pooled, bool) {
	s, ok := p.freeList.Dequeue()
	if !ok {
		return nil, false
	}
	p.totalAlloc.Add(1)
	return newPooledBuffer(p, s), true
}

// requeue returns a slice to the free list. The queue capacity covers
// every slice the pool ever constructed, so the enqueue cannot fail while
// the single-recycle invariant holds.
func (p *SlicePool) requeue(s *slice) {
	p.freeList.Enqueue(s)
	p.totalFree.Add(1)
}

// SliceSize returns the fixed lease size in bytes.
func (p *SlicePool) SliceSize() int { return p.sliceSize }

// Stats returns a point-in-time snapshot of pool accounting.
func (p *SlicePool) Stats() api.PoolStats {
	totalAlloc := p.totalAlloc.Load()
	totalFree := p.totalFree.Load()
	return api.PoolStats{
		TotalSlices: p.sliceCount,
		Free:        p.freeList.Len(),
		TotalAlloc:  totalAlloc,
		TotalFree:   totalFree,
		InUse:       totalAlloc - totalFree,
		Discarded:   p.discarded.Load(),
		Reclaimed:   p.reclaimed.Load(),
	}
}
