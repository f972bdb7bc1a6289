package transport

import (
	"fmt"
	"io"
	"net"
	"sync"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	"github.com/1216063060/incubator-hugegraph-computer/internal/netbuf"
	"github.com/1216063060/incubator-hugegraph-computer/internal/recv"
	pb "github.com/1216063060/incubator-hugegraph-computer/internal/rpc"
	"github.com/1216063060/incubator-hugegraph-computer/logging"
	"google.golang.org/grpc"
)

// Server is the gRPC receive endpoint of a worker. Senders stream message
// chunks to it; the Server turns them into NetworkBuffers and routes them
// into the RecvManager.
type Server struct {
	opts          *config.Options
	manager       *recv.RecvManager
	lifecycleLock sync.Mutex
	server        *grpc.Server
	logger        *logging.Logger
}

// CreateServer produces a Server feeding the given RecvManager
func CreateServer(opts *config.Options, manager *recv.RecvManager) *Server {
	config.EnsureDefaultOptionsValues(opts)
	return &Server{
		opts:    opts,
		manager: manager,
		logger:  logging.CreateLogger("recv-server", opts.LogLevel),
	}
}

func (s *Server) connectionString() string {
	return fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
}

// Start the server - will block the current goroutine
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.connectionString())
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}
	return s.Serve(lis)
}

// Serve accepts sender streams on an existing listener - will block the
// current goroutine
func (s *Server) Serve(lis net.Listener) error {
	s.lifecycleLock.Lock()
	s.server = grpc.NewServer()
	pb.RegisterReceiverServiceServer(s.server, &receiverServer{
		manager: s.manager,
		logger:  s.logger,
	})
	s.lifecycleLock.Unlock()
	s.logger.Infof("listening on %s", lis.Addr())
	return s.server.Serve(lis)
}

// GracefulStop stops the server, waiting for active sender streams to finish
func (s *Server) GracefulStop() error {
	s.lifecycleLock.Lock()
	defer s.lifecycleLock.Unlock()
	if s.server != nil {
		s.server.GracefulStop()
	}
	return nil
}

// Stop the server immediately
func (s *Server) Stop() error {
	s.lifecycleLock.Lock()
	defer s.lifecycleLock.Unlock()
	if s.server != nil {
		s.server.Stop()
	}
	return nil
}

// receiverServer implements the ReceiverService RPC interface
type receiverServer struct {
	manager *recv.RecvManager
	logger  *logging.Logger
}

// SendMessages consumes one sender's stream of message chunks, acknowledging
// with a summary of what was received
func (rs *receiverServer) SendMessages(stream pb.ReceiverService_SendMessagesServer) error {
	var receivedBytes int64
	var receivedCount int64
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&pb.MSendSummary{
				ReceivedBytes: receivedBytes,
				ReceivedCount: receivedCount,
			})
		}
		if err != nil {
			return err
		}
		var buffer computer.NetworkBuffer
		if len(chunk.GetFileRegionPath()) > 0 {
			buffer = netbuf.CreateFileRegionBuffer(chunk.GetFileRegionPath(), int(chunk.GetFileRegionLength()))
		} else {
			buffer = netbuf.CreateByteBuffer(chunk.GetData())
		}
		err = rs.manager.AddBuffer(chunk.GetMessageType(), int(chunk.GetPartition()), buffer)
		if err != nil {
			rs.logger.Errorf("failed to accept %s buffer for partition %d: %v",
				chunk.GetMessageType(), chunk.GetPartition(), err)
			return err
		}
		receivedBytes += int64(buffer.Length())
		receivedCount++
	}
}
