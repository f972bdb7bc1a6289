package store

import (
	"bufio"
	"encoding/binary"
	"os"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/pierrec/lz4"
)

// EntryWriter writes a stream of sorted entries to an lz4-compressed file
type EntryWriter struct {
	file       *os.File
	buffered   *bufio.Writer
	compressor *lz4.Writer
}

// CreateEntryWriter opens a new entry file at path for writing
func CreateEntryWriter(path string) (*EntryWriter, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	buffered := bufio.NewWriter(file)
	return &EntryWriter{
		file:       file,
		buffered:   buffered,
		compressor: lz4.NewWriter(buffered),
	}, nil
}

// WriteEntry appends an entry to the file. Callers must supply entries in
// key order.
func (ew *EntryWriter) WriteEntry(entry computer.KvEntry) error {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], uint32(len(entry.Key())))
	if _, err := ew.compressor.Write(scratch[:]); err != nil {
		return err
	}
	if _, err := ew.compressor.Write(entry.Key()); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(scratch[:], uint32(len(entry.Value())))
	if _, err := ew.compressor.Write(scratch[:]); err != nil {
		return err
	}
	if _, err := ew.compressor.Write(entry.Value()); err != nil {
		return err
	}
	return nil
}

// Close flushes the compression stream and closes the underlying file
func (ew *EntryWriter) Close() error {
	if err := ew.compressor.Close(); err != nil {
		ew.file.Close()
		return err
	}
	if err := ew.buffered.Flush(); err != nil {
		ew.file.Close()
		return err
	}
	return ew.file.Close()
}
