package computer

// MessageType describes the category of received graph data
type MessageType = string

const (
	// VertexType indicates that vertex data is being received
	//   e.g. manager.AddBuffer(VertexType, 0, buffer)
	VertexType MessageType = "vertex"
	// EdgeType indicates that edge data is being received
	EdgeType MessageType = "edge"
	// MsgType indicates that algorithm messages are being received
	MsgType MessageType = "message"
)
