package recv

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/1216063060/incubator-hugegraph-computer/internal/netbuf"
	"github.com/1216063060/incubator-hugegraph-computer/internal/sorting"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// sumCombiner interprets values as single bytes and adds them up
type sumCombiner struct{}

func (c *sumCombiner) Combine(left []byte, right []byte) ([]byte, error) {
	return []byte{left[0] + right[0]}, nil
}

func TestManagerRoutesBuffersByCategoryAndPartition(t *testing.T) {
	opts := createTestOptions(t, 1024)
	sorter := sorting.CreateSortManager(opts)
	m := CreateRecvManager(opts, sorter, nil)
	m.BeforeSuperstep(0)

	require.Nil(t, m.AddBuffer(computer.VertexType, 0,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v1"), []byte("a")))))
	require.Nil(t, m.AddBuffer(computer.VertexType, 1,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v2"), []byte("b")))))
	require.Nil(t, m.AddBuffer(computer.MsgType, 0,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v1"), []byte("m")))))

	iter, err := m.Iterator(computer.VertexType, 0)
	require.Nil(t, err)
	require.Equal(t, []string{"v1"}, drainKeys(t, iter))
	iter, err = m.Iterator(computer.VertexType, 1)
	require.Nil(t, err)
	require.Equal(t, []string{"v2"}, drainKeys(t, iter))
	iter, err = m.Iterator(computer.MsgType, 0)
	require.Nil(t, err)
	require.Equal(t, []string{"v1"}, drainKeys(t, iter))

	// same category, never-touched partition
	iter, err = m.Iterator(computer.MsgType, 1)
	require.Nil(t, err)
	require.False(t, iter.HasNext())
	require.Nil(t, sorter.Close())
}

func TestManagerRejectsUnknownMessageType(t *testing.T) {
	opts := createTestOptions(t, 1024)
	m := CreateRecvManager(opts, sorting.CreateSortManager(opts), nil)
	err := m.AddBuffer("telegram", 0, netbuf.CreateByteBuffer(nil))
	require.NotNil(t, err)
	require.IsType(t, errors.InvalidMessageTypeError{}, err)
}

func TestManagerCombinesMessagesForSameKey(t *testing.T) {
	opts := createTestOptions(t, 1024)
	sorter := sorting.CreateSortManager(opts)
	m := CreateRecvManager(opts, sorter, &sumCombiner{})
	m.BeforeSuperstep(0)

	data := store.AppendEntry(nil, []byte("v1"), []byte{3})
	data = store.AppendEntry(data, []byte("v1"), []byte{4})
	require.Nil(t, m.AddBuffer(computer.MsgType, 0, netbuf.CreateByteBuffer(data)))
	require.Nil(t, m.AddBuffer(computer.MsgType, 0,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v2"), []byte{9}))))

	iter, err := m.Iterator(computer.MsgType, 0)
	require.Nil(t, err)
	require.True(t, iter.HasNext())
	entry, err := iter.Next()
	require.Nil(t, err)
	require.Equal(t, []byte("v1"), entry.Key())
	require.Equal(t, []byte{7}, entry.Value())
	entry, err = iter.Next()
	require.Nil(t, err)
	require.Equal(t, []byte("v2"), entry.Key())
	require.Equal(t, []byte{9}, entry.Value())
	require.False(t, iter.HasNext())
	require.Nil(t, iter.Close())
	require.Nil(t, sorter.Close())
}

func TestManagerMergesEdgesUnderSourceVertex(t *testing.T) {
	opts := createTestOptions(t, 1024)
	sorter := sorting.CreateSortManager(opts)
	m := CreateRecvManager(opts, sorter, nil)
	m.BeforeSuperstep(0)

	// two buffers each deliver one edge of vertex v1
	first := store.EncodeSubKvValue([]computer.KvEntry{
		store.CreateKvEntry([]byte("v2"), []byte("w1")),
	})
	second := store.EncodeSubKvValue([]computer.KvEntry{
		store.CreateKvEntry([]byte("v3"), []byte("w2")),
	})
	require.Nil(t, m.AddBuffer(computer.EdgeType, 0,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v1"), first))))
	require.Nil(t, m.AddBuffer(computer.EdgeType, 0,
		netbuf.CreateByteBuffer(store.AppendEntry(nil, []byte("v1"), second))))

	iter, err := m.Iterator(computer.EdgeType, 0)
	require.Nil(t, err)
	require.True(t, iter.HasNext())
	entry, err := iter.Next()
	require.Nil(t, err)
	require.Equal(t, []byte("v1"), entry.Key())
	require.Equal(t, 2, entry.NumSubEntries())
	require.Equal(t, store.EncodeSubKvValue([]computer.KvEntry{
		store.CreateKvEntry([]byte("v2"), []byte("w1")),
		store.CreateKvEntry([]byte("v3"), []byte("w2")),
	}), entry.Value())
	require.False(t, iter.HasNext())
	require.Nil(t, iter.Close())
	require.Nil(t, sorter.Close())
}

func TestManagerTracksBytesAcrossPartitions(t *testing.T) {
	opts := createTestOptions(t, 1024)
	m := CreateRecvManager(opts, sorting.CreateSortManager(opts), nil)
	m.BeforeSuperstep(0)

	require.Nil(t, m.AddBuffer(computer.VertexType, 0, netbuf.CreateByteBuffer(make([]byte, 30))))
	require.Nil(t, m.AddBuffer(computer.EdgeType, 1, netbuf.CreateByteBuffer(make([]byte, 12))))
	require.Equal(t, int64(42), m.TotalBytes())
	stat := m.MessageStat()
	require.Equal(t, int64(42), stat.MessageBytes)

	// the next superstep starts from a clean slate
	m.AfterSuperstep()
	m.BeforeSuperstep(1)
	require.Equal(t, int64(0), m.TotalBytes())
}

func TestManagerHandlesConcurrentSenders(t *testing.T) {
	defer goleak.VerifyNone(t)
	opts := createTestOptions(t, 200)
	sorter := sorting.CreateSortManager(opts)
	m := CreateRecvManager(opts, sorter, nil)
	m.BeforeSuperstep(0)

	// several senders target the same partitions at once; each partition
	// still sees a serialized stream because every sender owns its keys
	var wg sync.WaitGroup
	for sender := 0; sender < 4; sender++ {
		wg.Add(1)
		go func(sender int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				key := fmt.Sprintf("key-%02d-%02d", sender, i)
				data := store.AppendEntry(nil, []byte(key), []byte("value"))
				if err := m.AddBuffer(computer.VertexType, sender%2, netbuf.CreateByteBuffer(data)); err != nil {
					t.Error(err)
					return
				}
			}
		}(sender)
	}
	wg.Wait()

	total := 0
	for partition := 0; partition < 2; partition++ {
		iter, err := m.Iterator(computer.VertexType, partition)
		require.Nil(t, err)
		keys := drainKeys(t, iter)
		require.True(t, sort.StringsAreSorted(keys))
		total += len(keys)
	}
	require.Equal(t, 100, total)
	require.Nil(t, sorter.Close())
}
