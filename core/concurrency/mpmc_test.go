// File: core/concurrency/mpmc_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLockFreeQueue_FillAndDrain(t *testing.T) {
	q := NewLockFreeQueue[int](16)
	if q.Cap() != 16 {
		t.Fatalf("Cap = %d, want 16", q.Cap())
	}
	for i := 0; i < 16; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue failed at %d", i)
		}
	}
	if q.Enqueue(99) {
		t.Error("Enqueue succeeded on a full queue")
	}
	if q.Len() != 16 {
		t.Errorf("Len = %d, want 16", q.Len())
	}
	for i := 0; i < 16; i++ {
		val, ok := q.Dequeue()
		if !ok || val != i {
			t.Fatalf("Dequeue = %d,%v, want %d,true", val, ok, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue succeeded on an empty queue")
	}
}

func TestLockFreeQueue_CapacityRoundsUp(t *testing.T) {
	q := NewLockFreeQueue[int](10)
	if q.Cap() != 16 {
		t.Errorf("Cap = %d, want next power of two 16", q.Cap())
	}
}

func TestLockFreeQueue_MPMC(t *testing.T) {
	q := NewLockFreeQueue[int](1024)
	producers := 8
	consumers := 8
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64
	var receivedSum int64
	var receivedCount int64
	totalItems := int64(producers * itemsPerProducer)

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !q.Enqueue(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	consumerWg := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				if val, ok := q.Dequeue(); ok {
					atomic.AddInt64(&receivedSum, int64(val))
					if atomic.AddInt64(&receivedCount, 1) == totalItems {
						return
					}
				} else {
					if atomic.LoadInt64(&receivedCount) >= totalItems {
						return
					}
					runtime.Gosched()
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("Timeout waiting for consumers. Received %d/%d", atomic.LoadInt64(&receivedCount), totalItems)
	}
}
