package todo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MegaGrindStone/mcp-todo"
)

func callTool(t *testing.T, srv Server, name string, args any) (mcp.CallToolResult, error) {
	t.Helper()

	argsBs, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal arguments: %v", err)
	}

	return srv.CallTool(context.Background(), mcp.CallToolParams{
		Name:      name,
		Arguments: argsBs,
	})
}

// resultItem decodes the single text content of a tool result back into an Item.
func resultItem(t *testing.T, result mcp.CallToolResult) Item {
	t.Helper()

	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(result.Content))
	}
	if result.Content[0].Type != mcp.ContentTypeText {
		t.Fatalf("expected text content, got %s", result.Content[0].Type)
	}

	var item Item
	if err := json.Unmarshal([]byte(result.Content[0].Text), &item); err != nil {
		t.Fatalf("failed to unmarshal item from content: %v", err)
	}
	return item
}

func TestServerListTools(t *testing.T) {
	srv := NewServer(NewStore())

	result, err := srv.ListTools(context.Background(), mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("failed to list tools: %v", err)
	}

	wantTools := []string{"list_todos", "create_todo", "update_todo", "delete_todo", "get_todo", "complete_todo"}
	if len(result.Tools) != len(wantTools) {
		t.Fatalf("expected %d tools, got %d", len(wantTools), len(result.Tools))
	}
	for i, want := range wantTools {
		if result.Tools[i].Name != want {
			t.Errorf("expected tool %s at index %d, got %s", want, i, result.Tools[i].Name)
		}
		if len(result.Tools[i].InputSchema) == 0 {
			t.Errorf("tool %s is missing an input schema", want)
		}
	}
}

func TestServerCreateTodo(t *testing.T) {
	srv := NewServer(NewStore())

	result, err := callTool(t, srv, "create_todo", map[string]any{
		"title":       "Buy milk",
		"description": "whole milk",
	})
	if err != nil {
		t.Fatalf("failed to call create_todo: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success result")
	}

	item := resultItem(t, result)
	if item.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %s", item.Title)
	}
	if item.Description == nil || *item.Description != "whole milk" {
		t.Errorf("expected description 'whole milk', got %v", item.Description)
	}
	if item.Completed {
		t.Error("expected new item to be uncompleted")
	}

	// The serialized payload uses snake_case field names.
	if !strings.Contains(result.Content[0].Text, `"created_at"`) {
		t.Errorf("expected created_at field in payload, got %s", result.Content[0].Text)
	}
}

func TestServerListTodos(t *testing.T) {
	srv := NewServer(NewStore())

	for _, title := range []string{"A", "B"} {
		if _, err := callTool(t, srv, "create_todo", map[string]any{"title": title}); err != nil {
			t.Fatalf("failed to call create_todo: %v", err)
		}
	}

	result, err := callTool(t, srv, "list_todos", map[string]any{})
	if err != nil {
		t.Fatalf("failed to call list_todos: %v", err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(result.Content[0].Text), &items); err != nil {
		t.Fatalf("failed to unmarshal items from content: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "A" || items[1].Title != "B" {
		t.Errorf("expected [A, B] in creation order, got [%s, %s]", items[0].Title, items[1].Title)
	}
}

func TestServerUpdateTodo(t *testing.T) {
	srv := NewServer(NewStore())

	created, err := callTool(t, srv, "create_todo", map[string]any{"title": "Buy milk"})
	if err != nil {
		t.Fatalf("failed to call create_todo: %v", err)
	}
	id := resultItem(t, created).ID

	result, err := callTool(t, srv, "update_todo", map[string]any{
		"id":    id,
		"title": "Buy oat milk",
	})
	if err != nil {
		t.Fatalf("failed to call update_todo: %v", err)
	}

	item := resultItem(t, result)
	if item.Title != "Buy oat milk" {
		t.Errorf("expected title 'Buy oat milk', got %s", item.Title)
	}
	if item.Completed {
		t.Error("expected completion state unchanged by title update")
	}
}

func TestServerDeleteTodo(t *testing.T) {
	srv := NewServer(NewStore())

	created, err := callTool(t, srv, "create_todo", map[string]any{"title": "Buy milk"})
	if err != nil {
		t.Fatalf("failed to call create_todo: %v", err)
	}
	id := resultItem(t, created).ID

	result, err := callTool(t, srv, "delete_todo", map[string]any{"id": id})
	if err != nil {
		t.Fatalf("failed to call delete_todo: %v", err)
	}

	want := "Successfully deleted todo item with ID " + id
	if result.Content[0].Text != want {
		t.Errorf("expected confirmation %q, got %q", want, result.Content[0].Text)
	}

	// A second delete of the same id reports not found.
	_, err = callTool(t, srv, "delete_todo", map[string]any{"id": id})
	assertNotFoundError(t, err, id)
}

func TestServerGetTodo(t *testing.T) {
	srv := NewServer(NewStore())

	created, err := callTool(t, srv, "create_todo", map[string]any{"title": "Buy milk"})
	if err != nil {
		t.Fatalf("failed to call create_todo: %v", err)
	}
	id := resultItem(t, created).ID

	result, err := callTool(t, srv, "get_todo", map[string]any{"id": id})
	if err != nil {
		t.Fatalf("failed to call get_todo: %v", err)
	}

	item := resultItem(t, result)
	if item.ID != id {
		t.Errorf("expected id %s, got %s", id, item.ID)
	}
}

func TestServerCompleteTodo(t *testing.T) {
	srv := NewServer(NewStore())

	created, err := callTool(t, srv, "create_todo", map[string]any{"title": "Buy milk"})
	if err != nil {
		t.Fatalf("failed to call create_todo: %v", err)
	}
	id := resultItem(t, created).ID

	result, err := callTool(t, srv, "complete_todo", map[string]any{"id": id})
	if err != nil {
		t.Fatalf("failed to call complete_todo: %v", err)
	}

	item := resultItem(t, result)
	if !item.Completed {
		t.Error("expected item to be completed")
	}
}

func TestServerNotFoundErrors(t *testing.T) {
	srv := NewServer(NewStore())

	tests := []struct {
		tool string
		args map[string]any
	}{
		{tool: "update_todo", args: map[string]any{"id": "nonexistent-id", "title": "x"}},
		{tool: "delete_todo", args: map[string]any{"id": "nonexistent-id"}},
		{tool: "get_todo", args: map[string]any{"id": "nonexistent-id"}},
		{tool: "complete_todo", args: map[string]any{"id": "nonexistent-id"}},
	}

	for _, tc := range tests {
		t.Run(tc.tool, func(t *testing.T) {
			_, err := callTool(t, srv, tc.tool, tc.args)
			assertNotFoundError(t, err, "nonexistent-id")
		})
	}
}

func TestServerUnknownTool(t *testing.T) {
	srv := NewServer(NewStore())

	_, err := callTool(t, srv, "unknown_tool", map[string]any{})
	if err == nil {
		t.Fatal("expected error for unknown tool, got nil")
	}

	var jsonErr mcp.JSONRPCError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected JSONRPCError, got %T", err)
	}
	if jsonErr.Message != "Tool not found" {
		t.Errorf("expected message 'Tool not found', got %s", jsonErr.Message)
	}
	if jsonErr.Data["name"] != "unknown_tool" {
		t.Errorf("expected tool name in error data, got %v", jsonErr.Data)
	}
}

func TestServerInvalidArguments(t *testing.T) {
	srv := NewServer(NewStore())

	_, err := srv.CallTool(context.Background(), mcp.CallToolParams{
		Name:      "create_todo",
		Arguments: json.RawMessage(`{"title": 42}`),
	})
	if err == nil {
		t.Fatal("expected error for malformed arguments, got nil")
	}

	var jsonErr mcp.JSONRPCError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected JSONRPCError, got %T", err)
	}
	if jsonErr.Message != "Failed to unmarshal arguments" {
		t.Errorf("expected unmarshal error message, got %s", jsonErr.Message)
	}
	if _, ok := jsonErr.Data["error"]; !ok {
		t.Errorf("expected error detail in data, got %v", jsonErr.Data)
	}
}

func assertNotFoundError(t *testing.T, err error, id string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var jsonErr mcp.JSONRPCError
	if !errors.As(err, &jsonErr) {
		t.Fatalf("expected JSONRPCError, got %T", err)
	}
	if jsonErr.Code != -32602 {
		t.Errorf("expected invalid params code -32602, got %d", jsonErr.Code)
	}
	if jsonErr.Message != "Todo item with specified ID not found" {
		t.Errorf("unexpected error message: %s", jsonErr.Message)
	}
	if jsonErr.Data["id"] != id {
		t.Errorf("expected id %s in error data, got %v", id, jsonErr.Data)
	}
}
