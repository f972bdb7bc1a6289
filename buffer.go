package computer

// A NetworkBuffer is an opaque chunk of message data received from the
// network layer, destined for one partition
type NetworkBuffer interface {
	Length() int   // Length returns the number of bytes held by this buffer
	Bytes() []byte // Bytes returns the raw contents of this buffer
}

// A FileRegionBuffer is a NetworkBuffer whose contents were already sorted
// and materialized to a file by the sender, allowing the receive side to
// adopt the file directly instead of sorting raw bytes
type FileRegionBuffer interface {
	NetworkBuffer
	Path() string // Path returns the location of the materialized file
}
