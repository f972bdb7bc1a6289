package sorting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/1216063060/incubator-hugegraph-computer/logging"
	"github.com/stretchr/testify/require"
)

func createTestOptions(t *testing.T) *config.Options {
	opts := &config.Options{
		PartitionCount:  1,
		DataDirs:        []string{t.TempDir()},
		WaitSortTimeout: 5 * time.Second,
		SortPoolSize:    2,
		LogLevel:        logging.ErrorLevel,
	}
	config.EnsureDefaultOptionsValues(opts)
	return opts
}

type testEntry struct {
	key   string
	value string
}

func readAllEntries(t *testing.T, path string) []testEntry {
	reader, err := store.CreateEntryReader(path, false)
	require.Nil(t, err)
	defer reader.Close()
	var entries []testEntry
	for {
		entry, err := reader.Next()
		if err != nil {
			require.IsType(t, errors.NoMoreEntriesError{}, err)
			return entries
		}
		entries = append(entries, testEntry{key: string(entry.Key()), value: string(entry.Value())})
	}
}

func writeSortedFile(t *testing.T, dir string, name string, entries []testEntry) string {
	path := filepath.Join(dir, name)
	writer, err := store.CreateEntryWriter(path)
	require.Nil(t, err)
	for _, entry := range entries {
		require.Nil(t, writer.WriteEntry(store.CreateKvEntry([]byte(entry.key), []byte(entry.value))))
	}
	require.Nil(t, writer.Close())
	return path
}

func TestMergeBuffersSortsEntriesToFile(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	first := store.AppendEntry(nil, []byte("cherry"), []byte("3"))
	first = store.AppendEntry(first, []byte("apple"), []byte("1"))
	second := store.AppendEntry(nil, []byte("banana"), []byte("2"))
	second = store.AppendEntry(second, []byte("apple"), []byte("4"))

	path := filepath.Join(t.TempDir(), "sorted")
	require.Nil(t, <-sm.MergeBuffers([][]byte{first, second}, path, false, CreateKvFlusher()))
	require.Nil(t, sm.Close())

	// duplicate keys survive a plain kv sort, in buffer arrival order
	require.Equal(t, []testEntry{
		{"apple", "1"},
		{"apple", "4"},
		{"banana", "2"},
		{"cherry", "3"},
	}, readAllEntries(t, path))
}

func TestMergeBuffersReportsCorruptBuffer(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	data := store.AppendEntry(nil, []byte("key"), []byte("value"))
	path := filepath.Join(t.TempDir(), "sorted")
	err := <-sm.MergeBuffers([][]byte{data[:len(data)-2]}, path, false, CreateKvFlusher())
	require.NotNil(t, err)
	require.IsType(t, errors.CorruptEntryError{}, err)
	require.Nil(t, sm.Close())
}

func TestMergeInputsUnionsFilesAndKeepsInputs(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	dir := t.TempDir()
	left := writeSortedFile(t, dir, "left", []testEntry{{"a", "1"}, {"c", "3"}, {"e", "5"}})
	right := writeSortedFile(t, dir, "right", []testEntry{{"b", "2"}, {"d", "4"}})
	output := filepath.Join(dir, "merged")

	require.Nil(t, sm.MergeInputs([]string{left, right}, []string{output}, false, CreateKvFlusher()))
	require.Equal(t, []testEntry{
		{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}, {"e", "5"},
	}, readAllEntries(t, output))
	// the inputs are untouched
	require.Equal(t, 3, len(readAllEntries(t, left)))
	require.Equal(t, 2, len(readAllEntries(t, right)))
}

func TestMergeInputsSpreadsAcrossOutputs(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	dir := t.TempDir()
	inputs := []string{
		writeSortedFile(t, dir, "in0", []testEntry{{"a", "1"}}),
		writeSortedFile(t, dir, "in1", []testEntry{{"b", "2"}}),
		writeSortedFile(t, dir, "in2", []testEntry{{"c", "3"}}),
	}
	outputs := []string{filepath.Join(dir, "out0"), filepath.Join(dir, "out1")}

	require.Nil(t, sm.MergeInputs(inputs, outputs, false, CreateKvFlusher()))
	// round-robin grouping: out0 <- in0+in2, out1 <- in1
	require.Equal(t, []testEntry{{"a", "1"}, {"c", "3"}}, readAllEntries(t, outputs[0]))
	require.Equal(t, []testEntry{{"b", "2"}}, readAllEntries(t, outputs[1]))
}

func TestIteratorMergesSortedFilesInKeyOrder(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	dir := t.TempDir()
	paths := []string{
		writeSortedFile(t, dir, "a", []testEntry{{"b", "1"}, {"d", "2"}}),
		writeSortedFile(t, dir, "b", []testEntry{{"a", "3"}, {"b", "4"}, {"e", "5"}}),
		writeSortedFile(t, dir, "c", nil), // empty files are legal
	}

	iter, err := sm.Iterator(paths, false)
	require.Nil(t, err)
	var got []testEntry
	for iter.HasNext() {
		peeked, err := iter.Peek()
		require.Nil(t, err)
		entry, err := iter.Next()
		require.Nil(t, err)
		require.Equal(t, peeked, entry)
		got = append(got, testEntry{key: string(entry.Key()), value: string(entry.Value())})
	}
	// equal keys drain in input file order
	require.Equal(t, []testEntry{
		{"a", "3"}, {"b", "1"}, {"b", "4"}, {"d", "2"}, {"e", "5"},
	}, got)
	_, err = iter.Next()
	require.IsType(t, errors.NoMoreEntriesError{}, err)
	require.Nil(t, iter.Close())
	require.Nil(t, iter.Close()) // closing twice is harmless
}

func TestIteratorWithoutFilesIsExhausted(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	iter, err := sm.Iterator(nil, false)
	require.Nil(t, err)
	require.False(t, iter.HasNext())
	_, err = iter.Peek()
	require.IsType(t, errors.NoMoreEntriesError{}, err)
	require.Nil(t, iter.Close())
}

func TestSortPoolBoundsConcurrency(t *testing.T) {
	opts := createTestOptions(t)
	opts.SortPoolSize = 1
	sm := CreateSortManager(opts)
	dir := t.TempDir()

	var results []<-chan error
	for i := 0; i < 8; i++ {
		data := store.AppendEntry(nil, []byte{byte('z' - i)}, []byte("v"))
		results = append(results, sm.MergeBuffers([][]byte{data}, filepath.Join(dir, string(rune('a'+i))), false, CreateKvFlusher()))
	}
	for _, done := range results {
		require.Nil(t, <-done)
	}
	require.Nil(t, sm.Close())

	iter, err := sm.Iterator([]string{filepath.Join(dir, "a"), filepath.Join(dir, "h")}, false)
	require.Nil(t, err)
	require.True(t, iter.HasNext())
	require.Nil(t, iter.Close())
}

func TestMergeBuffersCombinesSameKeyRuns(t *testing.T) {
	sm := CreateSortManager(createTestOptions(t))
	data := store.AppendEntry(nil, []byte("v1"), []byte("a"))
	data = store.AppendEntry(data, []byte("v2"), []byte("c"))
	data = store.AppendEntry(data, []byte("v1"), []byte("b"))

	path := filepath.Join(t.TempDir(), "combined")
	require.Nil(t, <-sm.MergeBuffers([][]byte{data}, path, false, CreateCombineFlusher(&concatCombiner{})))
	require.Equal(t, []testEntry{
		{"v1", "ab"},
		{"v2", "c"},
	}, readAllEntries(t, path))
	require.Nil(t, sm.Close())
}
