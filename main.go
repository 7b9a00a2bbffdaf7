package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/danielhkuo/ai-partner/cliparse"
	"github.com/danielhkuo/ai-partner/db"
	"github.com/danielhkuo/ai-partner/kvstore"
	"github.com/danielhkuo/ai-partner/logging"
	"github.com/danielhkuo/ai-partner/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("storage setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Storage ready", "type", cfg.DatabaseType, "poll_mode", cfg.PollMode)

	// Create server
	server := http.Server{
		Handler: router.NewRouter(kvstore.Fallback(store), cfg),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg cliparse.Config) (kvstore.Store, func(), error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory:
		return kvstore.NewMemory(), func() {}, nil

	case cliparse.DatabaseFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return nil, nil, fmt.Errorf("firestore client: %w", err)
		}
		return kvstore.NewFirestore(client, kvstore.DefaultCollection), func() { client.Close() }, nil

	default:
		conn, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewSQL(conn), func() { conn.Close() }, nil
	}
}
