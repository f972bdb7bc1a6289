package computer

// A Sorter sorts and merges received message data on behalf of a
// ReceivePartition. Sort work runs on the Sorter's own pool - callers
// never block that pool, they only wait on completion signals.
type Sorter interface {
	// MergeBuffers asynchronously sorts the given buffers into a single
	// sorted file at outputPath. The returned channel always eventually
	// receives exactly one result, nil on success.
	MergeBuffers(buffers [][]byte, outputPath string, withSubKv bool, flusher OuterSortFlusher) <-chan error
	// MergeInputs synchronously merges the entries of the input files into
	// the given output files, leaving the inputs untouched. The outputs
	// cover the same entry set as the inputs.
	MergeInputs(inputs []string, outputs []string, withSubKv bool, flusher OuterSortFlusher) error
	// Iterator produces a merged, key-ordered iterator over the entries of
	// the given sorted files
	Iterator(paths []string, withSubKv bool) (PeekableIterator, error)
}
