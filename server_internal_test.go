package mcp

import (
	"context"
	"testing"
)

func TestRequestCancelsRelease(t *testing.T) {
	rc := newRequestCancels()

	ctx, cancel := context.WithCancel(context.Background())
	rc.add("1", cancel)

	rc.release("1")

	if ctx.Err() == nil {
		t.Error("expected context to be cancelled on release")
	}

	rc.mu.Lock()
	tracked := len(rc.cancels)
	rc.mu.Unlock()
	if tracked != 0 {
		t.Errorf("expected no tracked requests after release, got %d", tracked)
	}
}

func TestRequestCancelsCancel(t *testing.T) {
	rc := newRequestCancels()

	ctx, cancel := context.WithCancel(context.Background())
	rc.add("1", cancel)

	rc.cancel("1")

	if ctx.Err() == nil {
		t.Error("expected context to be cancelled")
	}

	// Cancelling or releasing an unknown ID is a no-op.
	rc.cancel("2")
	rc.release("2")
}
