// File: pool/alloc_stub.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default region allocator for platforms without a dedicated backend:
// plain Go heap allocations.

package pool

import "github.com/momentics/slicepool/api"

type heapAllocator struct{}

func (heapAllocator) Allocate(byteLength int) []byte {
	return make([]byte, byteLength)
}

func defaultRegionAllocator() api.RegionAllocator {
	return heapAllocator{}
}
