// Package mcp implements the server side of the Model Context Protocol (MCP)
// needed to expose tool-style operations to LLM clients, following the official
// specification from https://spec.modelcontextprotocol.io/specification/.
//
// The package provides the JSON-RPC 2.0 message schema, stdio and SSE transports,
// and a server core that handles the initialization handshake, keepalive pings,
// and tool invocation dispatch. Domain servers implement the ToolServer interface
// and are plugged in through server options; see the servers/todo package for the
// todo-list server built on top of it.
package mcp
