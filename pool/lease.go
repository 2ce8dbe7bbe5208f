// File: pool/lease.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PooledBuffer is the caller-facing lease over one slice. The single
// atomic view slot is the double-free guard: exactly one of any number of
// racing Free/Discard calls takes the view, the rest no-op.

package pool

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/slicepool/api"
)

// PooledBuffer wraps one slice and its currently-live view. Free and
// Discard are the explicit release paths; a lease dropped with neither is
// routed through Discard by a finalizer once the lease itself becomes
// unreachable, so the slice is recycled after its view is collected.
type PooledBuffer struct {
	pool  *SlicePool
	slice *slice
	view  atomic.Pointer[Buffer]
}

var _ api.Pooled = (*PooledBuffer)(nil)

func newPooledBuffer(p *SlicePool, s *slice) *PooledBuffer {
	pb := &PooledBuffer{pool: p, slice: s}
	pb.view.Store(s.view())
	// Safety net for leases dropped without an explicit release.
	runtime.SetFinalizer(pb, (*PooledBuffer).Discard)
	return pb
}

// Resource returns the live view, or api.ErrBufferReleased once the lease
// has been freed or discarded. No side effects on pool state.
func (pb *PooledBuffer) Resource() (api.Buffer, error) {
	v := pb.view.Load()
	if v == nil {
		return nil, api.ErrBufferReleased
	}
	return v, nil
}

// Free takes the view slot and, if this call won it, recycles the slice
// immediately. Idempotent; a second Free or a race with Discard is a
// no-op and never double-recycles.
func (pb *PooledBuffer) Free() {
	if pb.view.Swap(nil) != nil {
		runtime.SetFinalizer(pb, nil)
		// The caller attests nothing touches the bytes anymore.
		pb.pool.requeue(pb.slice)
	}
}

// Discard takes the view slot and, if this call won it, hands the detached
// view to the reclamation monitor. The slice is recycled only after the
// runtime proves the view unreachable.
func (pb *PooledBuffer) Discard() {
	if v := pb.view.Swap(nil); v != nil {
		// No-op when Discard runs as the lease finalizer; the runtime
		// clears the finalizer before invoking it.
		runtime.SetFinalizer(pb, nil)
		pb.pool.discarded.Add(1)
		monitor().watch(v, pb.slice, pb.pool)
	}
}
