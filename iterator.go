package computer

// PeekableIterator is a generalized interface for iterating over sorted
// KvEntries, regardless of where they come from. Iterators are finite and
// restartable from scratch only - not mid-stream.
type PeekableIterator interface {
	HasNext() bool
	// Next returns the next entry if one is available, or errors.NoMoreEntriesError
	Next() (KvEntry, error)
	// Peek returns the next entry without advancing, or errors.NoMoreEntriesError
	Peek() (KvEntry, error)
	Close() error
}
