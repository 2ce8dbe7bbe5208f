// File: pool/options.go
// Package pool defines functional options for SlicePool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/slicepool/api"

// Option customizes pool construction.
type Option func(*SlicePool)

// WithRegionAllocator replaces the platform-default bulk allocator used
// for backing regions.
func WithRegionAllocator(a api.RegionAllocator) Option {
	return func(p *SlicePool) {
		p.alloc = a
	}
}

// WithReclaimNotify installs a hook invoked by the reclamation monitor
// with the number of slices recycled through the safety net. The hook
// runs on the monitor goroutine and must not block.
func WithReclaimNotify(fn func(n int)) Option {
	return func(p *SlicePool) {
		p.reclaimNotify = fn
	}
}
