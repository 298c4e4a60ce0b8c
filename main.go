package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/questboard/questboard/catalog"
	"github.com/questboard/questboard/config"
	"github.com/questboard/questboard/db"
	"github.com/questboard/questboard/middleware"
	"github.com/questboard/questboard/router"
	"github.com/questboard/questboard/store"
	"github.com/questboard/questboard/voting"
)

func main() {
	ctx := context.Background()

	// Load .env in development; ignore if absent
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema ready")

	// Wire services over the Postgres store
	pg := store.NewPostgres(conn)
	catalogService := catalog.New(pg, pg)
	votingService := voting.New(pg, pg)

	mux := router.New(catalogService, votingService, conn, cfg)

	server := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
		// h2c serves HTTP/2 without TLS; the proxy terminates TLS
		Handler: h2c.NewHandler(middleware.CORS(mux), &http2.Server{}),
	}

	go func() {
		slog.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	<-ctrlc
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited gracefully")
}
