package computer

// MessageStat summarizes the messages received for one or more partitions
type MessageStat struct {
	MessageCount int64 // number of messages received (not currently counted, see RecvPartition.MessageStat)
	MessageBytes int64 // total bytes received
}

// Merge accumulates another MessageStat into this one
func (ms *MessageStat) Merge(other MessageStat) {
	ms.MessageCount += other.MessageCount
	ms.MessageBytes += other.MessageBytes
}
