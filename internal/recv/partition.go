package recv

import (
	"sync"
	"sync/atomic"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/1216063060/incubator-hugegraph-computer/internal/sorting"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/1216063060/incubator-hugegraph-computer/logging"
)

// RecvPartition manages the buffers received for one partition and the files
// generated by sorting those buffers. The type of data may be vertex, edge
// or message; the category only influences the flusher applied during sorts
// and the tag passed to the file generator.
//
// AddBuffer and Iterator are mutually exclusive: at most one of them
// executes at a time. Once Iterator has been called, AddBuffer must not be
// called again - this is a caller contract, not internally enforced.
type RecvPartition struct {
	lock sync.Mutex

	// the receive and sort roles are swapped between these two sets, never
	// copied; after a swap the new receive set is reset via prepareSort
	recvBuffers *recvBuffers
	sortBuffers *recvBuffers

	sorter        computer.Sorter
	fileGenerator computer.FileGenerator
	flusher       computer.OuterSortFlusher
	fileType      string
	withSubKv     bool
	mergeFileNum  int
	useFileRegion bool

	outputFiles []string
	totalBytes  int64

	// only the first background sort failure is retained
	firstErr atomic.Pointer[error]

	logger *logging.Logger
}

func createRecvPartition(opts *config.Options, fileGenerator computer.FileGenerator, sorter computer.Sorter, fileType string, withSubKv bool, flusher computer.OuterSortFlusher) *RecvPartition {
	return &RecvPartition{
		recvBuffers:   createRecvBuffers(opts.ReceivedBuffersBytesLimit, opts.WaitSortTimeout),
		sortBuffers:   createRecvBuffers(opts.ReceivedBuffersBytesLimit, opts.WaitSortTimeout),
		sorter:        sorter,
		fileGenerator: fileGenerator,
		flusher:       flusher,
		fileType:      fileType,
		withSubKv:     withSubKv,
		mergeFileNum:  opts.MergeFileNum,
		useFileRegion: opts.RecvFileMode,
		logger:        logging.CreateLogger(fileType+"-recv-partition", opts.LogLevel),
	}
}

// AddBuffer accepts one received buffer. Only one goroutine may call this
// method at a time. A FileRegionBuffer is adopted directly into the output
// file list; raw buffers accumulate until the configured byte limit triggers
// an asynchronous sort. Background sort failures never fail AddBuffer - they
// surface on Iterator.
func (p *RecvPartition) AddBuffer(buffer computer.NetworkBuffer) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.totalBytes += int64(buffer.Length())
	if fileRegion, ok := buffer.(computer.FileRegionBuffer); ok {
		// the sender already sorted and materialized this data
		p.outputFiles = append(p.outputFiles, fileRegion.Path())
		return nil
	}
	p.recvBuffers.addBuffer(buffer.Bytes())
	if p.recvBuffers.full() {
		// wait for the previous sort before reusing its buffer set
		if err := p.sortBuffers.waitSorted(); err != nil {
			return err
		}
		p.swapReceiveAndSortBuffers()
		p.flushSortBuffersAsync()
	}
	return nil
}

// Iterator drains this partition and returns a merged, key-ordered iterator
// over every entry it received. Only one goroutine may call this method at a
// time, and AddBuffer must not be called afterwards. The first background
// sort failure, if any, is surfaced here wrapped in a SortFailedError, on
// every drain attempt.
func (p *RecvPartition) Iterator() (computer.PeekableIterator, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if !p.useFileRegion {
		if err := p.flushAllBuffersAndWaitSorted(); err != nil {
			return nil, err
		}
	}
	if err := p.mergeOutputFilesIfNeeded(); err != nil {
		return nil, err
	}
	if len(p.outputFiles) == 0 {
		return sorting.CreateEmptyIterator(), nil
	}
	return p.sorter.Iterator(p.outputFiles, p.withSubKv)
}

// TotalBytes returns the total bytes ever passed to AddBuffer
func (p *RecvPartition) TotalBytes() int64 {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.totalBytes
}

// MessageStat summarizes the data received by this partition
func (p *RecvPartition) MessageStat() computer.MessageStat {
	p.lock.Lock()
	defer p.lock.Unlock()
	// TODO: count the messages received, not only their bytes
	return computer.MessageStat{MessageCount: 0, MessageBytes: p.totalBytes}
}

// flushAllBuffersAndWaitSorted spills any residual received data and waits
// for both buffer sets to finish sorting. A threshold-triggered sort may
// have started just before the drain, hence the two-phase wait.
func (p *RecvPartition) flushAllBuffersAndWaitSorted() error {
	if err := p.sortBuffers.waitSorted(); err != nil {
		return err
	}
	if p.recvBuffers.getTotalBytes() > 0 {
		p.swapReceiveAndSortBuffers()
		p.flushSortBuffersAsync()
		if err := p.sortBuffers.waitSorted(); err != nil {
			return err
		}
	}
	return p.checkSortError()
}

// flushSortBuffersAsync allocates an output file and submits the sort
// buffers to the sorter, without blocking the caller. Completion is relayed
// to the buffer set's sorted signal so no waiter blocks forever, regardless
// of success or failure.
func (p *RecvPartition) flushSortBuffersAsync() {
	path := p.fileGenerator.NextPath(p.fileType)
	buffers := p.sortBuffers
	done := p.sorter.MergeBuffers(buffers.getBuffers(), path, p.withSubKv, p.flusher)
	p.outputFiles = append(p.outputFiles, path)
	go func() {
		if err := <-done; err != nil {
			p.logger.Errorf("failed to merge received buffers: %v", err)
			// just record the first error
			p.firstErr.CompareAndSwap(nil, &err)
		}
		buffers.signalSorted()
	}()
}

// swapReceiveAndSortBuffers exchanges the roles of the two buffer sets and
// prepares the new receive target. No buffer is visible in both sets, and
// none is dropped between them.
func (p *RecvPartition) swapReceiveAndSortBuffers() {
	p.recvBuffers, p.sortBuffers = p.sortBuffers, p.recvBuffers
	p.recvBuffers.prepareSort()
}

// mergeOutputFilesIfNeeded reduces the number of output files, e.g. merging
// 10000 spilled files into a handful before iteration
func (p *RecvPartition) mergeOutputFilesIfNeeded() error {
	if len(p.outputFiles) <= 1 {
		return nil
	}
	// TODO: restore p.mergeFileNum as the reduction target once the merged
	// iterator can resume sub-kv runs across several output files
	mergeFileNum := 1
	newOutputs := p.genOutputFileNames(mergeFileNum)
	if err := p.sorter.MergeInputs(p.outputFiles, newOutputs, p.withSubKv, p.flusher); err != nil {
		return errors.SortFailedError{Cause: err}
	}
	if err := store.RemoveFiles(p.outputFiles); err != nil {
		p.logger.Warnf("failed to remove pre-merge spill files: %v", err)
	}
	p.outputFiles = newOutputs
	return nil
}

func (p *RecvPartition) genOutputFileNames(targetSize int) []string {
	files := make([]string, 0, targetSize)
	for i := 0; i < targetSize; i++ {
		files = append(files, p.fileGenerator.NextPath(p.fileType))
	}
	return files
}

func (p *RecvPartition) checkSortError() error {
	if err := p.firstErr.Load(); err != nil {
		return errors.SortFailedError{Cause: *err}
	}
	return nil
}
