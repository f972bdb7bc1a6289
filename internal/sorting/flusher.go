package sorting

import (
	"encoding/binary"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
)

// kvFlusher writes every entry of a same-key run individually, preserving
// duplicate keys in the output
type kvFlusher struct{}

// CreateKvFlusher produces an OuterSortFlusher which performs no combining
func CreateKvFlusher() computer.OuterSortFlusher {
	return &kvFlusher{}
}

// Flush writes one same-key run of entries
func (f *kvFlusher) Flush(run []computer.KvEntry, writer computer.KvEntryWriter) error {
	for _, entry := range run {
		if err := writer.WriteEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

// combineFlusher folds a same-key run into a single entry via a Combiner
type combineFlusher struct {
	combiner computer.Combiner
}

// CreateCombineFlusher produces an OuterSortFlusher which reduces all values
// under one key into a single value
func CreateCombineFlusher(combiner computer.Combiner) computer.OuterSortFlusher {
	return &combineFlusher{combiner: combiner}
}

// Flush combines one same-key run of entries into a single written entry
func (f *combineFlusher) Flush(run []computer.KvEntry, writer computer.KvEntryWriter) error {
	value := run[0].Value()
	for _, entry := range run[1:] {
		combined, err := f.combiner.Combine(value, entry.Value())
		if err != nil {
			return err
		}
		value = combined
	}
	return writer.WriteEntry(store.CreateKvEntry(run[0].Key(), value))
}

// subKvFlusher concatenates the nested sub-entries of a same-key run into a
// single sub-kv entry, so that e.g. all edges of one vertex end up in one
// entry regardless of how many buffers delivered them
type subKvFlusher struct{}

// CreateSubKvFlusher produces an OuterSortFlusher for sub-kv entries
func CreateSubKvFlusher() computer.OuterSortFlusher {
	return &subKvFlusher{}
}

// Flush merges one same-key run of sub-kv entries into a single written entry
func (f *subKvFlusher) Flush(run []computer.KvEntry, writer computer.KvEntryWriter) error {
	if len(run) == 1 {
		return writer.WriteEntry(run[0])
	}
	numSubEntries := 0
	size := 4
	for _, entry := range run {
		numSubEntries += entry.NumSubEntries()
		size += len(entry.Value()) - 4
	}
	value := make([]byte, 4, size)
	binary.BigEndian.PutUint32(value, uint32(numSubEntries))
	for _, entry := range run {
		// strip each value's own sub-entry count prefix
		value = append(value, entry.Value()[4:]...)
	}
	return writer.WriteEntry(store.CreateSubKvEntry(run[0].Key(), value, numSubEntries))
}
