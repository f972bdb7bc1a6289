package store

import (
	"encoding/binary"
	"io"
	"os"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/pierrec/lz4"
)

// EntryReader sequentially decodes the entries of one sorted file
type EntryReader struct {
	file         *os.File
	decompressor *lz4.Reader
	withSubKv    bool
	offset       int64
}

// CreateEntryReader opens the entry file at path for sequential reading
func CreateEntryReader(path string, withSubKv bool) (*EntryReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &EntryReader{
		file:         file,
		decompressor: lz4.NewReader(file),
		withSubKv:    withSubKv,
	}, nil
}

// Next decodes the next entry, returning errors.NoMoreEntriesError once the
// file is exhausted
func (er *EntryReader) Next() (computer.KvEntry, error) {
	key, err := er.readChunk(true)
	if err != nil {
		return nil, err
	}
	value, err := er.readChunk(false)
	if err != nil {
		return nil, err
	}
	entry := &kvEntry{key: key, value: value}
	if er.withSubKv {
		if len(value) < 4 {
			return nil, errors.CorruptEntryError{Offset: er.offset}
		}
		entry.numSubEntries = int(binary.BigEndian.Uint32(value[:4]))
	}
	return entry, nil
}

// readChunk reads one length-prefixed chunk. A clean EOF is only legal on a
// key boundary.
func (er *EntryReader) readChunk(eofLegal bool) ([]byte, error) {
	var scratch [4]byte
	if _, err := io.ReadFull(er.decompressor, scratch[:]); err != nil {
		if err == io.EOF && eofLegal {
			return nil, errors.NoMoreEntriesError{}
		}
		return nil, errors.CorruptEntryError{Offset: er.offset}
	}
	er.offset += 4
	length := binary.BigEndian.Uint32(scratch[:])
	chunk := make([]byte, length)
	if _, err := io.ReadFull(er.decompressor, chunk); err != nil {
		return nil, errors.CorruptEntryError{Offset: er.offset}
	}
	er.offset += int64(length)
	return chunk, nil
}

// Close closes the underlying file
func (er *EntryReader) Close() error {
	return er.file.Close()
}
