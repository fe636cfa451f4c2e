package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MegaGrindStone/mcp-todo"
	"github.com/MegaGrindStone/mcp-todo/servers/todo"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := todo.NewStore()
	transport := mcp.NewStdIO(os.Stdin, os.Stdout)

	srv := mcp.NewServer(mcp.Info{
		Name:    "mcp-todo",
		Version: "0.1.0",
	}, transport,
		mcp.WithToolServer(todo.NewServer(store)),
		mcp.WithInstructions(todo.Instructions),
		mcp.WithServerLogger(logger),
	)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", slog.String("err", err.Error()))
		}
	}()

	logger.Info("starting MCP todo server")

	// Serve blocks until the server is shut down.
	srv.Serve()

	logger.Info("server stopped")
}

// logLevel reads the optional LOG_LEVEL environment variable, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
