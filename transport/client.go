package transport

import (
	"context"
	"fmt"

	computer "github.com/1216063060/incubator-hugegraph-computer"
	"github.com/1216063060/incubator-hugegraph-computer/config"
	pb "github.com/1216063060/incubator-hugegraph-computer/internal/rpc"
	"google.golang.org/grpc"
)

// Client streams message buffers from a sender to a worker's receive
// endpoint. A Client carries one stream; Finish closes it and returns the
// receiver's summary.
type Client struct {
	conn   *grpc.ClientConn
	stream pb.ReceiverService_SendMessagesClient
}

// CreateClient dials the receive endpoint at target and opens a message stream
func CreateClient(opts *config.Options, target string) (*Client, error) {
	config.EnsureDefaultOptionsValues(opts)
	ctx, cancel := context.WithTimeout(context.Background(), opts.RPCTimeout)
	defer cancel()
	conn, err := grpc.DialContext(ctx, target, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return nil, fmt.Errorf("fail to dial: %v", err)
	}
	stream, err := pb.NewReceiverServiceClient(conn).SendMessages(context.Background())
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Client{conn: conn, stream: stream}, nil
}

// SendBuffer streams one raw buffer of framed entries to a partition
func (c *Client) SendBuffer(messageType computer.MessageType, partition int, data []byte) error {
	return c.stream.Send(&pb.MMessageChunk{
		MessageType: messageType,
		Partition:   int32(partition),
		Data:        data,
	})
}

// SendFileRegion hands over an already-sorted, materialized file to a partition
func (c *Client) SendFileRegion(messageType computer.MessageType, partition int, path string, length int64) error {
	return c.stream.Send(&pb.MMessageChunk{
		MessageType:      messageType,
		Partition:        int32(partition),
		FileRegionPath:   path,
		FileRegionLength: length,
	})
}

// Finish closes the stream and returns the receiver's summary of the
// transfer as a MessageStat
func (c *Client) Finish() (computer.MessageStat, error) {
	defer c.conn.Close()
	summary, err := c.stream.CloseAndRecv()
	if err != nil {
		return computer.MessageStat{}, err
	}
	return computer.MessageStat{
		MessageCount: summary.GetReceivedCount(),
		MessageBytes: summary.GetReceivedBytes(),
	}, nil
}
