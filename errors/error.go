package errors

import (
	"fmt"
	"time"
)

// NoMoreEntriesError occurs when there are no more entries in a PeekableIterator
type NoMoreEntriesError struct{}

// Error returns a textual representation of this NoMoreEntriesError
func (e NoMoreEntriesError) Error() string {
	return "No more entries"
}

// SortFailedError occurs when a background sort of received buffers failed.
// The first background failure is recorded and surfaced on every drain attempt.
type SortFailedError struct{ Cause error }

// Error returns a textual representation of this SortFailedError
func (e SortFailedError) Error() string {
	return fmt.Sprintf("Failed to sort received buffers: %v", e.Cause)
}

// Unwrap returns the background failure which poisoned the partition
func (e SortFailedError) Unwrap() error {
	return e.Cause
}

// WaitSortTimeoutError occurs when an in-flight sort did not signal completion
// within the configured wait timeout. The sort itself is not cancelled.
type WaitSortTimeoutError struct{ Timeout time.Duration }

// Error returns a textual representation of this WaitSortTimeoutError
func (e WaitSortTimeoutError) Error() string {
	return fmt.Sprintf("Timed out after %s waiting for buffers to be sorted", e.Timeout)
}

// InvalidMessageTypeError occurs when a buffer arrives for an unknown data category
type InvalidMessageTypeError struct{ Type string }

// Error returns a textual representation of this InvalidMessageTypeError
func (e InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("Invalid message type %s", e.Type)
}

// CorruptEntryError occurs when a received buffer or sorted file does not
// decode as a sequence of key-value entries
type CorruptEntryError struct{ Offset int64 }

// Error returns a textual representation of this CorruptEntryError
func (e CorruptEntryError) Error() string {
	return fmt.Sprintf("Corrupt key-value entry at offset %d", e.Offset)
}
