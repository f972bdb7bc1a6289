package netbuf

import (
	computer "github.com/1216063060/incubator-hugegraph-computer"
)

// bytesBuffer is a NetworkBuffer holding raw received bytes
type bytesBuffer struct {
	data []byte
}

// CreateByteBuffer produces a NetworkBuffer over raw received bytes
func CreateByteBuffer(data []byte) computer.NetworkBuffer {
	return &bytesBuffer{data: data}
}

// Length returns the number of bytes held by this buffer
func (b *bytesBuffer) Length() int {
	return len(b.data)
}

// Bytes returns the raw contents of this buffer
func (b *bytesBuffer) Bytes() []byte {
	return b.data
}

// fileRegionBuffer is a NetworkBuffer referencing a pre-sorted file which the
// sender already materialized on shared or local storage
type fileRegionBuffer struct {
	path   string
	length int
}

// CreateFileRegionBuffer produces a FileRegionBuffer for an already-sorted file
func CreateFileRegionBuffer(path string, length int) computer.FileRegionBuffer {
	return &fileRegionBuffer{path: path, length: length}
}

// Length returns the number of bytes held by the referenced file
func (b *fileRegionBuffer) Length() int {
	return b.length
}

// Bytes returns nil - the contents of a file region live on disk
func (b *fileRegionBuffer) Bytes() []byte {
	return nil
}

// Path returns the location of the materialized file
func (b *fileRegionBuffer) Path() string {
	return b.path
}
