package computer

// A KvEntry is a single key-value entry of received graph data. For sub-kv
// entries, the value nests a secondary list of key-value pairs under the
// primary key (e.g. the edges of one vertex)
type KvEntry interface {
	Key() []byte        // Key retrieves the primary key of this entry
	Value() []byte      // Value retrieves the (possibly nested) value of this entry
	NumSubEntries() int // NumSubEntries returns the number of nested sub-entries, or 0 for a plain entry
}

// A KvEntryWriter accepts a stream of sorted KvEntries, typically writing
// them to durable storage. Entries must be written in key order.
type KvEntryWriter interface {
	WriteEntry(entry KvEntry) error
}
