package recv

import (
	"sync"
	"time"

	"github.com/1216063060/incubator-hugegraph-computer/errors"
)

// recvBuffers accumulates received buffers until a background sort drains
// them. It carries the coordination state between the receiving goroutine
// and the background sort: the sorted channel is closed whenever no sort is
// pending, so a wait issued before any sort ever started returns immediately.
type recvBuffers struct {
	lock        sync.Mutex
	buffers     [][]byte
	totalBytes  int64
	bytesLimit  int64
	waitTimeout time.Duration
	sorted      chan struct{}
	sortPending bool
}

func createRecvBuffers(bytesLimit int64, waitTimeout time.Duration) *recvBuffers {
	// not sorting yet, so waiters must not block
	sorted := make(chan struct{})
	close(sorted)
	return &recvBuffers{
		bytesLimit:  bytesLimit,
		waitTimeout: waitTimeout,
		sorted:      sorted,
	}
}

// addBuffer appends a received buffer, growing the byte total. A set holding
// data is unsorted by definition, so waiters must block until the sort which
// eventually drains it signals completion.
func (rb *recvBuffers) addBuffer(data []byte) {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	rb.buffers = append(rb.buffers, data)
	rb.totalBytes += int64(len(data))
	rb.markSortPending()
}

// full returns true once the accumulated bytes reach the configured limit
func (rb *recvBuffers) full() bool {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	return rb.totalBytes >= rb.bytesLimit
}

func (rb *recvBuffers) getTotalBytes() int64 {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	return rb.totalBytes
}

// getBuffers returns the accumulated buffers. Only safe to hand to a sort
// task after this set has been swapped out of the receive role.
func (rb *recvBuffers) getBuffers() [][]byte {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	return rb.buffers
}

// waitSorted blocks until the pending sort signals completion, or until the
// configured timeout elapses. The sort is not cancelled on timeout.
func (rb *recvBuffers) waitSorted() error {
	rb.lock.Lock()
	sorted := rb.sorted
	rb.lock.Unlock()
	select {
	case <-sorted:
		return nil
	case <-time.After(rb.waitTimeout):
		return errors.WaitSortTimeoutError{Timeout: rb.waitTimeout}
	}
}

// signalSorted wakes all current and future waiters, until the next
// prepareSort. Called regardless of whether the sort succeeded, so that no
// waiter blocks forever.
func (rb *recvBuffers) signalSorted() {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	if rb.sortPending {
		rb.sortPending = false
		close(rb.sorted)
	}
}

// prepareSort clears the contents and marks a sort as pending in advance, in
// preparation for this set becoming the active receive target
func (rb *recvBuffers) prepareSort() {
	rb.lock.Lock()
	defer rb.lock.Unlock()
	rb.buffers = nil
	rb.totalBytes = 0
	rb.markSortPending()
}

// markSortPending replaces the closed sorted channel with an open one.
// Callers must hold rb.lock.
func (rb *recvBuffers) markSortPending() {
	if !rb.sortPending {
		rb.sortPending = true
		rb.sorted = make(chan struct{})
	}
}
