// File: pool/alloc_linux.go
//go:build linux
// +build linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux default region allocator: anonymous private mmap, keeping large
// backing regions off the Go heap. Falls back to the heap if the mapping
// fails. Regions live for the process lifetime, so they are never
// unmapped.

package pool

import (
	"github.com/momentics/slicepool/api"
	"golang.org/x/sys/unix"
)

type mmapAllocator struct{}

func (mmapAllocator) Allocate(byteLength int) []byte {
	data, err := unix.Mmap(-1, 0, byteLength,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, byteLength)
	}
	return data[:byteLength:byteLength]
}

func defaultRegionAllocator() api.RegionAllocator {
	return mmapAllocator{}
}
