// File: pool/reclaim.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reclamation monitor: the safety net behind Discard. Finalizers append
// reclamations to a FIFO and wake a single long-lived drain goroutine;
// the drain goroutine recycles one slice at a time into the originating
// pool's free list.

package pool

import (
	"runtime"
	"sync"

	"github.com/eapache/queue"
)

// reclamation resolves one collected view back to its originating slice
// and pool.
type reclamation struct {
	slice *slice
	pool  *SlicePool
}

// reclaimMonitor serializes safety-net recycling on one goroutine, shared
// by every pool in the process.
type reclaimMonitor struct {
	mu      sync.Mutex
	pending *queue.Queue

	// wake carries at most one signal; the drain loop re-checks the FIFO
	// after every wakeup, so coalesced signals are never lost.
	wake chan struct{}
	stop chan struct{}
}

var (
	monitorOnce sync.Once
	monitorInst *reclaimMonitor
)

// monitor returns the process-wide reclamation monitor, starting its drain
// goroutine on first use. It is never stopped under normal operation.
func monitor() *reclaimMonitor {
	monitorOnce.Do(func() {
		monitorInst = newReclaimMonitor()
		go monitorInst.run()
	})
	return monitorInst
}

func newReclaimMonitor() *reclaimMonitor {
	return &reclaimMonitor{
		pending: queue.New(),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

// watch registers v so that once the runtime proves it unreachable, s is
// recycled into p's free list. The finalizer must not block, so it only
// appends to the FIFO and signals the drain goroutine.
func (m *reclaimMonitor) watch(v *Buffer, s *slice, p *SlicePool) {
	runtime.SetFinalizer(v, func(_ *Buffer) {
		m.add(reclamation{slice: s, pool: p})
	})
}

func (m *reclaimMonitor) add(r reclamation) {
	m.mu.Lock()
	m.pending.Add(r)
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// next removes and returns one pending reclamation.
func (m *reclaimMonitor) next() (reclamation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending.Length() == 0 {
		return reclamation{}, false
	}
	return m.pending.Remove().(reclamation), true
}

// run is the drain loop. On stop it exits quietly; reclamations still
// pending are leaked for the remainder of the process, which degrades
// capacity but not correctness.
func (m *reclaimMonitor) run() {
	for {
		select {
		case <-m.wake:
		case <-m.stop:
			return
		}
		for {
			r, ok := m.next()
			if !ok {
				break
			}
			r.pool.requeue(r.slice)
			r.pool.reclaimed.Add(1)
			if r.pool.reclaimNotify != nil {
				r.pool.reclaimNotify(1)
			}
		}
	}
}
