package mcp

import (
	"context"
	"iter"
)

// ServerTransport provides the server-side communication layer in the MCP protocol.
type ServerTransport interface {
	// Sessions returns an iterator that yields new client sessions as they are initiated.
	// Each yielded Session represents a unique client connection and provides methods for
	// bidirectional communication. The implementation must guarantee that each session ID
	// is unique across all active connections.
	//
	// The implementation should exit the iteration when the Shutdown method is called.
	Sessions() iter.Seq[Session]

	// Shutdown gracefully shuts down the ServerTransport to clean up resources. The implementations should not
	// close all the Session it produce, the caller would already do that when callling this method. The caller
	// is guaranteed to call this method only once.
	Shutdown(ctx context.Context) error
}

// ClientTransport provides the client-side communication layer in the MCP protocol.
type ClientTransport interface {
	// StartSession initiates a new session with the server and returns it once the
	// transport is ready to carry messages. Operations are canceled when the context
	// is canceled, and appropriate errors are returned for connection failures.
	StartSession(ctx context.Context) (Session, error)
}

// Session represents a bidirectional communication channel between server and client.
type Session interface {
	// ID returns the unique identifier for this session. The implementation must
	// guarantee that session IDs are unique across all active sessions managed.
	ID() string

	// Send transmits a message to the other party.
	Send(ctx context.Context, msg JSONRPCMessage) error

	// Messages returns an iterator that yields messages received from the other party.
	// The implementations should exit the iteration if the session is closed.
	Messages() iter.Seq[JSONRPCMessage]

	// Stop stops the session.
	// The implementation should not called this, as the caller is guaranteed to call
	// this method once.
	Stop()
}

// ToolServer defines the interface for exposing tools in the MCP protocol.
//
// Implementations own whatever state their tools operate on; the server core
// invokes them from one goroutine per request, so they must be safe for
// concurrent use.
type ToolServer interface {
	// ListTools returns a paginated list of available tools.
	// Returns error if operation fails or context is cancelled.
	ListTools(context.Context, ListToolsParams) (ListToolsResult, error)

	// CallTool executes a specific tool with the given arguments.
	//
	// Errors of type JSONRPCError are forwarded to the client unchanged, so
	// implementations control the error code and structured context the caller
	// sees; any other error is reported as an internal error.
	CallTool(context.Context, CallToolParams) (CallToolResult, error)
}
