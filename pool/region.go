// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Backing regions, the fixed slice descriptors carved out of them, and
// view creation.

package pool

import "github.com/momentics/slicepool/api"

// region is one contiguous backing allocation. It is owned by the pool for
// the pool's whole lifetime and never resized or freed individually.
type region struct {
	data []byte
}

// slice is a fixed sub-range descriptor of a region. Immutable after
// construction; only which view currently exists over the range changes.
type slice struct {
	owner  *region
	offset int
	size   int
}

// view materializes a fresh, independent Buffer over the slice's range.
// The three-index expression pins capacity to the range end so a view can
// never reslice into a neighboring slice.
func (s *slice) view() *Buffer {
	return &Buffer{data: s.owner.data[s.offset : s.offset+s.size : s.offset+s.size]}
}

// Buffer is the concrete live view handed out through a lease. Each Buffer
// is an independent heap object, so the runtime can observe its
// unreachability independently of the always-reachable region storage.
type Buffer struct {
	data []byte
}

var _ api.Buffer = (*Buffer)(nil)

// Bytes returns the view's byte range.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the fixed view length.
func (b *Buffer) Len() int { return len(b.data) }

// Copy returns a deep copy of the view contents.
func (b *Buffer) Copy() []byte {
	dst := make([]byte, len(b.data))
	copy(dst, b.data)
	return dst
}
