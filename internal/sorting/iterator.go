package sorting

import (
	"bytes"
	"container/heap"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/hashicorp/go-multierror"
)

type emptyIterator struct{}

// CreateEmptyIterator produces an immediately-exhausted PeekableIterator
func CreateEmptyIterator() computer.PeekableIterator {
	return &emptyIterator{}
}

// HasNext returns true iff this iterator can produce another entry
func (ei *emptyIterator) HasNext() bool {
	return false
}

// Next returns the next entry if one is available, or an error
func (ei *emptyIterator) Next() (computer.KvEntry, error) {
	return nil, errors.NoMoreEntriesError{}
}

// Peek returns the next entry without advancing, or an error
func (ei *emptyIterator) Peek() (computer.KvEntry, error) {
	return nil, errors.NoMoreEntriesError{}
}

// Close releases the resources of this iterator
func (ei *emptyIterator) Close() error {
	return nil
}

// mergeSource is one open entry file participating in a k-way merge
type mergeSource struct {
	reader *store.EntryReader
	head   computer.KvEntry
	index  int // position in the input file list, for a stable merge order
}

// mergeHeap orders sources by the key of their head entry, breaking ties by
// input file order so that equal keys drain deterministically
type mergeHeap []*mergeSource

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	cmp := bytes.Compare(h[i].head.Key(), h[j].head.Key())
	if cmp != 0 {
		return cmp < 0
	}
	return h[i].index < h[j].index
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x interface{}) {
	*h = append(*h, x.(*mergeSource))
}

func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	source := old[n-1]
	*h = old[:n-1]
	return source
}

// mergedIterator produces a key-ordered merge of several sorted entry files
type mergedIterator struct {
	sources mergeHeap
	readers []*store.EntryReader
	closed  bool
}

// CreateMergedIterator opens the given sorted files and produces a single
// key-ordered PeekableIterator over their union
func CreateMergedIterator(paths []string, withSubKv bool) (computer.PeekableIterator, error) {
	mi := &mergedIterator{}
	for i, path := range paths {
		reader, err := store.CreateEntryReader(path, withSubKv)
		if err != nil {
			mi.Close()
			return nil, err
		}
		mi.readers = append(mi.readers, reader)
		head, err := reader.Next()
		if err != nil {
			if _, ok := err.(errors.NoMoreEntriesError); ok {
				continue // empty file
			}
			mi.Close()
			return nil, err
		}
		mi.sources = append(mi.sources, &mergeSource{reader: reader, head: head, index: i})
	}
	heap.Init(&mi.sources)
	return mi, nil
}

// HasNext returns true iff this iterator can produce another entry
func (mi *mergedIterator) HasNext() bool {
	return len(mi.sources) > 0
}

// Peek returns the next entry without advancing, or an error
func (mi *mergedIterator) Peek() (computer.KvEntry, error) {
	if len(mi.sources) == 0 {
		return nil, errors.NoMoreEntriesError{}
	}
	return mi.sources[0].head, nil
}

// Next returns the next entry if one is available, or an error
func (mi *mergedIterator) Next() (computer.KvEntry, error) {
	if len(mi.sources) == 0 {
		return nil, errors.NoMoreEntriesError{}
	}
	source := mi.sources[0]
	entry := source.head
	next, err := source.reader.Next()
	if err != nil {
		if _, ok := err.(errors.NoMoreEntriesError); !ok {
			return nil, err
		}
		heap.Pop(&mi.sources)
		return entry, nil
	}
	source.head = next
	heap.Fix(&mi.sources, 0)
	return entry, nil
}

// Close closes all of the underlying entry files
func (mi *mergedIterator) Close() error {
	if mi.closed {
		return nil
	}
	mi.closed = true
	var result *multierror.Error
	for _, reader := range mi.readers {
		if err := reader.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
