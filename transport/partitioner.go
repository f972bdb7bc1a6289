package transport

import (
	xxhash "github.com/cespare/xxhash/v2"
)

// PartitionForKey routes a message key to the partition which owns it.
// Senders and receivers must agree on the partition count.
func PartitionForKey(key []byte, partitionCount int) int {
	hasher := xxhash.New()
	hasher.Write(key) // error is always nil
	return int(hasher.Sum64() % uint64(partitionCount))
}
