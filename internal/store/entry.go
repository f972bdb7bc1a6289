package store

import (
	"encoding/binary"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
)

// kvEntry is the concrete KvEntry decoded from buffers and sorted files
type kvEntry struct {
	key           []byte
	value         []byte
	numSubEntries int
}

// Key retrieves the primary key of this entry
func (e *kvEntry) Key() []byte {
	return e.key
}

// Value retrieves the (possibly nested) value of this entry
func (e *kvEntry) Value() []byte {
	return e.value
}

// NumSubEntries returns the number of nested sub-entries, or 0 for a plain entry
func (e *kvEntry) NumSubEntries() int {
	return e.numSubEntries
}

// CreateKvEntry produces a plain KvEntry from a key and a value
func CreateKvEntry(key []byte, value []byte) computer.KvEntry {
	return &kvEntry{key: key, value: value}
}

// CreateSubKvEntry produces a KvEntry whose value nests numSubEntries
// secondary key-value pairs, encoded as by EncodeSubKvValue
func CreateSubKvEntry(key []byte, value []byte, numSubEntries int) computer.KvEntry {
	return &kvEntry{key: key, value: value, numSubEntries: numSubEntries}
}

// Entries are framed as | uint32 key length | key | uint32 value length | value |,
// both lengths big-endian. A sub-kv value additionally starts with a uint32
// count of the nested entries, each framed the same way.

// AppendEntry encodes a single entry onto data, returning the grown slice.
// Senders use this to frame entries into network buffers.
func AppendEntry(data []byte, key []byte, value []byte) []byte {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], uint32(len(key)))
	data = append(data, scratch[:]...)
	data = append(data, key...)
	binary.BigEndian.PutUint32(scratch[:], uint32(len(value)))
	data = append(data, scratch[:]...)
	data = append(data, value...)
	return data
}

// EncodeSubKvValue encodes nested key-value pairs into a sub-kv value
func EncodeSubKvValue(subEntries []computer.KvEntry) []byte {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], uint32(len(subEntries)))
	value := append([]byte{}, scratch[:]...)
	for _, sub := range subEntries {
		value = AppendEntry(value, sub.Key(), sub.Value())
	}
	return value
}

// DecodeEntries decodes all entries framed into a received buffer. The
// returned entries alias the buffer's backing array rather than copying it.
func DecodeEntries(data []byte, withSubKv bool) ([]computer.KvEntry, error) {
	entries := make([]computer.KvEntry, 0, 16)
	offset := int64(0)
	for offset < int64(len(data)) {
		entry, next, err := decodeEntry(data, offset, withSubKv)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		offset = next
	}
	return entries, nil
}

func decodeEntry(data []byte, offset int64, withSubKv bool) (computer.KvEntry, int64, error) {
	key, next, err := decodeChunk(data, offset)
	if err != nil {
		return nil, 0, err
	}
	value, next, err := decodeChunk(data, next)
	if err != nil {
		return nil, 0, err
	}
	entry := &kvEntry{key: key, value: value}
	if withSubKv {
		if len(value) < 4 {
			return nil, 0, errors.CorruptEntryError{Offset: offset}
		}
		entry.numSubEntries = int(binary.BigEndian.Uint32(value[:4]))
	}
	return entry, next, nil
}

func decodeChunk(data []byte, offset int64) ([]byte, int64, error) {
	if offset+4 > int64(len(data)) {
		return nil, 0, errors.CorruptEntryError{Offset: offset}
	}
	length := int64(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if offset+length > int64(len(data)) {
		return nil, 0, errors.CorruptEntryError{Offset: offset}
	}
	return data[offset : offset+length], offset + length, nil
}
