package computer

// An OuterSortFlusher controls how a run of same-key entries is written out
// during an external sort or merge - e.g. whether multiple values under one
// key are written separately, concatenated as sub-entries, or combined into
// a single value via a Combiner. The run is never empty and all entries in
// it share one key.
type OuterSortFlusher interface {
	Flush(run []KvEntry, writer KvEntryWriter) error
}

// A Combiner reduces two values under the same key into one, for algorithms
// whose messages can be pre-aggregated during sorting
type Combiner interface {
	Combine(a []byte, b []byte) ([]byte, error)
}
