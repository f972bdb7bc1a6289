package sorting

import (
	"bytes"
	"sort"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/1216063060/incubator-hugegraph-computer/logging"
	"golang.org/x/sync/errgroup"
)

// SortManager is the default Sorter. Buffer sorts run on a bounded worker
// pool shared by all partitions of a worker; file merges and iteration run
// on the calling goroutine.
type SortManager struct {
	pool   errgroup.Group
	logger *logging.Logger
}

// CreateSortManager produces a SortManager whose pool admits
// Options.SortPoolSize concurrent sort tasks
func CreateSortManager(opts *config.Options) *SortManager {
	sm := &SortManager{
		logger: logging.CreateLogger("sort-manager", opts.LogLevel),
	}
	sm.pool.SetLimit(opts.SortPoolSize)
	return sm
}

// MergeBuffers asynchronously sorts the given buffers into a single sorted
// file at outputPath. The returned channel always receives exactly one
// result, nil on success.
func (sm *SortManager) MergeBuffers(buffers [][]byte, outputPath string, withSubKv bool, flusher computer.OuterSortFlusher) <-chan error {
	done := make(chan error, 1)
	sm.pool.Go(func() error {
		// results travel on the completion channel, never through the pool
		done <- sm.sortBuffersToFile(buffers, outputPath, withSubKv, flusher)
		return nil
	})
	return done
}

func (sm *SortManager) sortBuffersToFile(buffers [][]byte, outputPath string, withSubKv bool, flusher computer.OuterSortFlusher) error {
	var entries []computer.KvEntry
	for _, buffer := range buffers {
		decoded, err := store.DecodeEntries(buffer, withSubKv)
		if err != nil {
			return err
		}
		entries = append(entries, decoded...)
	}
	// stable, so that equal keys drain in arrival order
	sort.SliceStable(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Key(), entries[j].Key()) < 0
	})
	sm.logger.Debugf("sorting %d buffers (%d entries) to %s", len(buffers), len(entries), outputPath)
	writer, err := store.CreateEntryWriter(outputPath)
	if err != nil {
		return err
	}
	if err := flushRuns(entries, flusher, writer); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

// flushRuns hands each same-key run of the sorted entries to the flusher
func flushRuns(entries []computer.KvEntry, flusher computer.OuterSortFlusher, writer computer.KvEntryWriter) error {
	for start := 0; start < len(entries); {
		end := start + 1
		for end < len(entries) && bytes.Equal(entries[end].Key(), entries[start].Key()) {
			end++
		}
		if err := flusher.Flush(entries[start:end], writer); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// MergeInputs synchronously merges the entries of the input files into the
// given output files, leaving the inputs untouched
func (sm *SortManager) MergeInputs(inputs []string, outputs []string, withSubKv bool, flusher computer.OuterSortFlusher) error {
	groups := make([][]string, len(outputs))
	for i, input := range inputs {
		groups[i%len(outputs)] = append(groups[i%len(outputs)], input)
	}
	for i, output := range outputs {
		if err := sm.mergeGroup(groups[i], output, withSubKv, flusher); err != nil {
			return err
		}
	}
	return nil
}

func (sm *SortManager) mergeGroup(paths []string, outputPath string, withSubKv bool, flusher computer.OuterSortFlusher) error {
	sm.logger.Debugf("merging %d files into %s", len(paths), outputPath)
	iter, err := CreateMergedIterator(paths, withSubKv)
	if err != nil {
		return err
	}
	defer iter.Close()
	writer, err := store.CreateEntryWriter(outputPath)
	if err != nil {
		return err
	}
	var run []computer.KvEntry
	for iter.HasNext() {
		entry, err := iter.Next()
		if err != nil {
			writer.Close()
			return err
		}
		if len(run) > 0 && !bytes.Equal(run[0].Key(), entry.Key()) {
			if err := flusher.Flush(run, writer); err != nil {
				writer.Close()
				return err
			}
			run = run[:0]
		}
		run = append(run, entry)
	}
	if len(run) > 0 {
		if err := flusher.Flush(run, writer); err != nil {
			writer.Close()
			return err
		}
	}
	return writer.Close()
}

// Iterator produces a merged, key-ordered iterator over the entries of the
// given sorted files
func (sm *SortManager) Iterator(paths []string, withSubKv bool) (computer.PeekableIterator, error) {
	if len(paths) == 0 {
		return CreateEmptyIterator(), nil
	}
	return CreateMergedIterator(paths, withSubKv)
}

// Close waits for all in-flight sort tasks to finish
func (sm *SortManager) Close() error {
	return sm.pool.Wait()
}
