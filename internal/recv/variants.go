package recv

import (
	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/internal/sorting"
)

// The three data categories share all of the orchestration in RecvPartition;
// they differ only in the flusher applied during sorts, the sub-kv flag, and
// the tag passed to the file generator.

// CreateVertexPartition produces a RecvPartition for vertex data
func CreateVertexPartition(opts *config.Options, fileGenerator computer.FileGenerator, sorter computer.Sorter) *RecvPartition {
	return createRecvPartition(opts, fileGenerator, sorter,
		computer.VertexType, false, sorting.CreateKvFlusher())
}

// CreateEdgePartition produces a RecvPartition for edge data. Edges nest
// under their source vertex id as sub-kv entries, and the edges of one
// vertex are concatenated during sorts however many buffers delivered them.
func CreateEdgePartition(opts *config.Options, fileGenerator computer.FileGenerator, sorter computer.Sorter) *RecvPartition {
	return createRecvPartition(opts, fileGenerator, sorter,
		computer.EdgeType, true, sorting.CreateSubKvFlusher())
}

// CreateMessagePartition produces a RecvPartition for algorithm messages.
// When the algorithm supplies a combiner, messages under the same vertex id
// are pre-aggregated during sorts.
func CreateMessagePartition(opts *config.Options, fileGenerator computer.FileGenerator, sorter computer.Sorter, combiner computer.Combiner) *RecvPartition {
	flusher := sorting.CreateKvFlusher()
	if combiner != nil {
		flusher = sorting.CreateCombineFlusher(combiner)
	}
	return createRecvPartition(opts, fileGenerator, sorter,
		computer.MsgType, false, flusher)
}
