package mcp_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/MegaGrindStone/mcp-todo"
)

func TestMustStringUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    mcp.MustString
		wantErr bool
	}{
		{name: "string input", input: `"abc-123"`, want: "abc-123"},
		{name: "integer input", input: `42`, want: "42"},
		{name: "boolean input", input: `true`, wantErr: true},
		{name: "object input", input: `{"key": "value"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got mcp.MustString
			err := json.Unmarshal([]byte(tc.input), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMustStringMarshal(t *testing.T) {
	bs, err := json.Marshal(mcp.MustString("42"))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(bs) != `"42"` {
		t.Errorf("expected quoted string, got %s", bs)
	}
}

func TestJSONRPCMessageNumericID(t *testing.T) {
	// Request IDs may arrive as JSON numbers; they normalize to strings.
	var msg mcp.JSONRPCMessage
	if err := json.Unmarshal([]byte(`{"jsonrpc": "2.0", "id": 7, "method": "ping"}`), &msg); err != nil {
		t.Fatalf("failed to unmarshal message: %v", err)
	}
	if msg.ID != mcp.MustString("7") {
		t.Errorf("expected id 7, got %s", msg.ID)
	}
}

func TestErrorHelpers(t *testing.T) {
	ipErr := mcp.InvalidParamsError("Todo item with specified ID not found", map[string]any{"id": "abc"})
	if ipErr.Code != -32602 {
		t.Errorf("expected code -32602, got %d", ipErr.Code)
	}
	if ipErr.Data["id"] != "abc" {
		t.Errorf("expected id in data, got %v", ipErr.Data)
	}

	intErr := mcp.InternalError("Serialization failed", map[string]any{"error": "boom"})
	if intErr.Code != -32603 {
		t.Errorf("expected code -32603, got %d", intErr.Code)
	}

	// JSONRPCError travels as an error value and survives wrapping.
	wrapped := fmt.Errorf("call failed: %w", ipErr)
	var jsonErr mcp.JSONRPCError
	if !errors.As(wrapped, &jsonErr) {
		t.Fatal("expected to recover JSONRPCError from wrapped error")
	}
	if jsonErr.Code != -32602 || jsonErr.Data["id"] != "abc" {
		t.Errorf("recovered error lost its fields: %+v", jsonErr)
	}
}
