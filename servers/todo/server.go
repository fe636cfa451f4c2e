package todo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MegaGrindStone/mcp-todo"
)

// Server implements the Model Context Protocol (MCP) for todo list operations.
// It exposes the six todo operations as MCP tools, translating tool-call requests
// into Store calls and Store outcomes into protocol results and errors.
//
// Server holds no state beyond the store reference and performs no business
// logic of its own; it implements the mcp.ToolServer interface.
type Server struct {
	store *Store
}

// Instructions describes the server's tools to connecting clients. It is exposed
// once per session through the initialization handshake.
const Instructions = "This is a todo server that helps you manage your todo list. " +
	"Use list_todos to view all todos, create_todo to create new todos, " +
	"update_todo to update existing todos, delete_todo to remove todos, " +
	"get_todo to view todo details, and complete_todo to mark todos as completed."

// NewServer creates a new todo MCP server operating on the given store. The store
// is shared, not copied; multiple sessions dispatching into the same server see
// the same collection.
func NewServer(store *Store) Server {
	return Server{
		store: store,
	}
}

// ListTools implements mcp.ToolServer interface.
// Returns the static list of the six todo tools supported by this server.
func (s Server) ListTools(context.Context, mcp.ListToolsParams) (mcp.ListToolsResult, error) {
	return toolList, nil
}

// CallTool implements mcp.ToolServer interface.
// Executes a specified todo tool with the given parameters.
//
// A request addressing an ID that matches no live item fails with an invalid
// params error carrying the offending ID; a result that cannot be serialized
// fails with an internal error carrying the underlying cause. Both surface to
// the client as protocol-level errors with their structured context intact.
func (s Server) CallTool(_ context.Context, params mcp.CallToolParams) (mcp.CallToolResult, error) {
	switch params.Name {
	case "list_todos":
		return s.listTodos()
	case "create_todo":
		return s.createTodo(params)
	case "update_todo":
		return s.updateTodo(params)
	case "delete_todo":
		return s.deleteTodo(params)
	case "get_todo":
		return s.getTodo(params)
	case "complete_todo":
		return s.completeTodo(params)
	default:
		return mcp.CallToolResult{}, mcp.InvalidParamsError("Tool not found",
			map[string]any{"name": params.Name})
	}
}

func (s Server) listTodos() (mcp.CallToolResult, error) {
	return itemResult(s.store.List())
}

func (s Server) createTodo(params mcp.CallToolParams) (mcp.CallToolResult, error) {
	var ctParams createTodoArgs
	if err := json.Unmarshal(params.Arguments, &ctParams); err != nil {
		return mcp.CallToolResult{}, unmarshalError(err)
	}

	item := s.store.Create(ctParams.Title, ctParams.Description)

	return itemResult(item)
}

func (s Server) updateTodo(params mcp.CallToolParams) (mcp.CallToolResult, error) {
	var utParams updateTodoArgs
	if err := json.Unmarshal(params.Arguments, &utParams); err != nil {
		return mcp.CallToolResult{}, unmarshalError(err)
	}

	item, err := s.store.Update(utParams.ID, utParams.Title, utParams.Description, utParams.Completed)
	if err != nil {
		return mcp.CallToolResult{}, storeError(err)
	}

	return itemResult(item)
}

func (s Server) deleteTodo(params mcp.CallToolParams) (mcp.CallToolResult, error) {
	var dtParams todoIDArgs
	if err := json.Unmarshal(params.Arguments, &dtParams); err != nil {
		return mcp.CallToolResult{}, unmarshalError(err)
	}

	if err := s.store.Delete(dtParams.ID); err != nil {
		return mcp.CallToolResult{}, storeError(err)
	}

	return mcp.CallToolResult{
		Content: []mcp.Content{
			{
				Type: mcp.ContentTypeText,
				Text: "Successfully deleted todo item with ID " + dtParams.ID,
			},
		},
		IsError: false,
	}, nil
}

func (s Server) getTodo(params mcp.CallToolParams) (mcp.CallToolResult, error) {
	var gtParams todoIDArgs
	if err := json.Unmarshal(params.Arguments, &gtParams); err != nil {
		return mcp.CallToolResult{}, unmarshalError(err)
	}

	item, err := s.store.Get(gtParams.ID)
	if err != nil {
		return mcp.CallToolResult{}, storeError(err)
	}

	return itemResult(item)
}

func (s Server) completeTodo(params mcp.CallToolParams) (mcp.CallToolResult, error) {
	var cmParams todoIDArgs
	if err := json.Unmarshal(params.Arguments, &cmParams); err != nil {
		return mcp.CallToolResult{}, unmarshalError(err)
	}

	item, err := s.store.Complete(cmParams.ID)
	if err != nil {
		return mcp.CallToolResult{}, storeError(err)
	}

	return itemResult(item)
}

// itemResult serializes the given item or item list into a single text content.
func itemResult(v any) (mcp.CallToolResult, error) {
	itemJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.CallToolResult{}, mcp.InternalError("Serialization failed",
			map[string]any{"error": err.Error()})
	}

	return mcp.CallToolResult{
		Content: []mcp.Content{
			{
				Type: mcp.ContentTypeText,
				Text: string(itemJSON),
			},
		},
		IsError: false,
	}, nil
}

// storeError translates store failures into protocol errors, keeping the failure
// category and echoing the offending ID as structured context.
func storeError(err error) error {
	var nfErr NotFoundError
	if errors.As(err, &nfErr) {
		return mcp.InvalidParamsError("Todo item with specified ID not found",
			map[string]any{"id": nfErr.ID})
	}
	return err
}

func unmarshalError(err error) error {
	return mcp.InvalidParamsError("Failed to unmarshal arguments",
		map[string]any{"error": err.Error()})
}
