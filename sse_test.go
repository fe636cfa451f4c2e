package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MegaGrindStone/mcp-todo"
)

func TestSSESession(t *testing.T) {
	mux := http.NewServeMux()
	httpSrv := httptest.NewServer(mux)
	defer httpSrv.Close()

	sseSrv := mcp.NewSSEServer(fmt.Sprintf("%s/message", httpSrv.URL))
	mux.Handle("/sse", sseSrv.HandleSSE())
	mux.Handle("/message", sseSrv.HandleMessage())

	srvSessions := make(chan mcp.Session, 1)
	go func() {
		for sess := range sseSrv.Sessions() {
			srvSessions <- sess
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sseCli := mcp.NewSSEClient(fmt.Sprintf("%s/sse", httpSrv.URL), httpSrv.Client())
	cliSess, err := sseCli.StartSession(ctx)
	if err != nil {
		t.Fatalf("failed to start client session: %v", err)
	}

	var srvSess mcp.Session
	select {
	case srvSess = <-srvSessions:
	case <-ctx.Done():
		t.Fatal("timed out waiting for server session")
	}

	if srvSess.ID() == "" {
		t.Error("expected non-empty session ID")
	}

	srvMsgs := make(chan mcp.JSONRPCMessage, 10)
	go func() {
		for msg := range srvSess.Messages() {
			srvMsgs <- msg
		}
	}()
	cliMsgs := make(chan mcp.JSONRPCMessage, 10)
	go func() {
		for msg := range cliSess.Messages() {
			cliMsgs <- msg
		}
	}()

	// Client to server via the advertised message endpoint.
	req := mcp.JSONRPCMessage{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      mcp.MustString("1"),
		Method:  "test/method",
		Params:  json.RawMessage(`{"key": "value"}`),
	}
	if err := cliSess.Send(ctx, req); err != nil {
		t.Fatalf("failed to send message from client: %v", err)
	}

	select {
	case got := <-srvMsgs:
		if got.ID != req.ID || got.Method != req.Method {
			t.Errorf("server received wrong message: %+v", got)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for message on server")
	}

	// Server to client over the event stream.
	res := mcp.JSONRPCMessage{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      mcp.MustString("1"),
		Result:  json.RawMessage(`{"ok": true}`),
	}
	if err := srvSess.Send(ctx, res); err != nil {
		t.Fatalf("failed to send message from server: %v", err)
	}

	select {
	case got := <-cliMsgs:
		if got.ID != res.ID {
			t.Errorf("client received wrong message: %+v", got)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for message on client")
	}

	srvSess.Stop()
	cliSess.Stop()

	if err := sseSrv.Shutdown(ctx); err != nil {
		t.Errorf("failed to shutdown transport: %v", err)
	}
}

func TestSSEHandleMessageRejectsMissingSession(t *testing.T) {
	mux := http.NewServeMux()
	httpSrv := httptest.NewServer(mux)
	defer httpSrv.Close()

	sseSrv := mcp.NewSSEServer(fmt.Sprintf("%s/message", httpSrv.URL))
	mux.Handle("/message", sseSrv.HandleMessage())

	// No sessionID query parameter.
	resp, err := http.Post(fmt.Sprintf("%s/message", httpSrv.URL), "application/json",
		nil)
	if err != nil {
		t.Fatalf("failed to post message: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestSSEHandleMessageRejectsInvalidJSON(t *testing.T) {
	mux := http.NewServeMux()
	httpSrv := httptest.NewServer(mux)
	defer httpSrv.Close()

	sseSrv := mcp.NewSSEServer(fmt.Sprintf("%s/message", httpSrv.URL))
	mux.Handle("/message", sseSrv.HandleMessage())

	resp, err := http.Post(fmt.Sprintf("%s/message?sessionID=some-session", httpSrv.URL),
		"application/json", nil)
	if err != nil {
		t.Fatalf("failed to post message: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}
