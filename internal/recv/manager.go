package recv

import (
	"fmt"
	"sync"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/errors"
	"github.com/1216063060/incubator-hugegraph-computer/internal/store"
	"github.com/1216063060/incubator-hugegraph-computer/logging"
	"github.com/docker/docker/pkg/locker"
)

// RecvManager owns the receive partitions of one superstep, creating them
// lazily and routing incoming buffers to them by data category and partition
// id. Buffers for different partitions may arrive concurrently; each
// partition still sees a serialized stream of AddBuffer calls.
type RecvManager struct {
	opts     *config.Options
	sorter   computer.Sorter
	combiner computer.Combiner

	plocks        *locker.Locker
	lock          sync.Mutex
	partitions    map[string]*RecvPartition
	fileGenerator computer.FileGenerator
	superstep     int

	logger *logging.Logger
}

// CreateRecvManager produces a RecvManager. The combiner, which may be nil,
// applies to message partitions only.
func CreateRecvManager(opts *config.Options, sorter computer.Sorter, combiner computer.Combiner) *RecvManager {
	config.EnsureDefaultOptionsValues(opts)
	return &RecvManager{
		opts:          opts,
		sorter:        sorter,
		combiner:      combiner,
		plocks:        locker.New(),
		partitions:    make(map[string]*RecvPartition),
		fileGenerator: store.CreateSuperstepFileGenerator(opts, 0),
		logger:        logging.CreateLogger("recv-manager", opts.LogLevel),
	}
}

// BeforeSuperstep discards the partitions of the previous superstep and
// redirects spill files to the new superstep's directories
func (m *RecvManager) BeforeSuperstep(superstep int) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.superstep = superstep
	m.partitions = make(map[string]*RecvPartition)
	m.fileGenerator = store.CreateSuperstepFileGenerator(m.opts, superstep)
}

// AfterSuperstep logs what the finished superstep received
func (m *RecvManager) AfterSuperstep() {
	stat := m.MessageStat()
	m.logger.Infof("superstep %d received %d bytes", m.superstep, stat.MessageBytes)
}

// AddBuffer routes one received buffer to its partition
func (m *RecvManager) AddBuffer(messageType computer.MessageType, partition int, buffer computer.NetworkBuffer) error {
	p, err := m.partition(messageType, partition)
	if err != nil {
		return err
	}
	return p.AddBuffer(buffer)
}

// Iterator drains one partition, returning a merged, key-ordered iterator
// over every entry it received. A partition which never received data yields
// an immediately-exhausted iterator.
func (m *RecvManager) Iterator(messageType computer.MessageType, partition int) (computer.PeekableIterator, error) {
	p, err := m.partition(messageType, partition)
	if err != nil {
		return nil, err
	}
	return p.Iterator()
}

// TotalBytes returns the total bytes received across all partitions
func (m *RecvManager) TotalBytes() int64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	total := int64(0)
	for _, p := range m.partitions {
		total += p.TotalBytes()
	}
	return total
}

// MessageStat aggregates the stats of all partitions
func (m *RecvManager) MessageStat() computer.MessageStat {
	m.lock.Lock()
	defer m.lock.Unlock()
	stat := computer.MessageStat{}
	for _, p := range m.partitions {
		stat.Merge(p.MessageStat())
	}
	return stat
}

// partition returns the RecvPartition for one (category, id) pair, creating
// it on first use. Creation is serialized per pair by a named lock so that
// concurrent senders cannot race two partitions into existence.
func (m *RecvManager) partition(messageType computer.MessageType, partition int) (*RecvPartition, error) {
	key := fmt.Sprintf("%s-%d", messageType, partition)
	m.plocks.Lock(key)
	defer m.plocks.Unlock(key)
	m.lock.Lock()
	p, ok := m.partitions[key]
	fileGenerator := m.fileGenerator
	m.lock.Unlock()
	if ok {
		return p, nil
	}
	switch messageType {
	case computer.VertexType:
		p = CreateVertexPartition(m.opts, fileGenerator, m.sorter)
	case computer.EdgeType:
		p = CreateEdgePartition(m.opts, fileGenerator, m.sorter)
	case computer.MsgType:
		p = CreateMessagePartition(m.opts, fileGenerator, m.sorter, m.combiner)
	default:
		return nil, errors.InvalidMessageTypeError{Type: messageType}
	}
	m.lock.Lock()
	m.partitions[key] = p
	m.lock.Unlock()
	return p, nil
}
