package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vmarko/contribgraph/internal/aggregate"
	"github.com/vmarko/contribgraph/internal/config"
	"github.com/vmarko/contribgraph/internal/mcptool"
	"github.com/vmarko/contribgraph/internal/providers"
	"github.com/vmarko/contribgraph/internal/providers/contribapi"
	"github.com/vmarko/contribgraph/internal/providers/demo"
	"github.com/vmarko/contribgraph/internal/providers/github"
	"github.com/vmarko/contribgraph/internal/server"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()
	config.SetupLogger()

	var (
		stdio    bool
		demoMode bool
	)
	flag.BoolVar(&stdio, "stdio", false, "serve the MCP server over stdio instead of HTTP")
	flag.BoolVar(&demoMode, "demo", false, "serve synthetic data instead of calling the upstream APIs")
	flag.Parse()

	if err := run(stdio, demoMode); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(stdio, demoMode bool) error {
	cfg := config.Load()

	var (
		profiles providers.ProfileSource
		activity providers.ActivitySource
	)
	if demoMode {
		p := demo.New()
		profiles, activity = p, p
		slog.Info("Demo mode: serving synthetic data")
	} else {
		if cfg.GitHubToken == "" {
			slog.Warn("GITHUB_TOKEN not set, profile lookups use the anonymous rate limit")
		}
		profiles = github.New(cfg.GitHubToken)
		activity = contribapi.New()
	}

	svc := aggregate.New(profiles, activity)
	mcp := mcptool.NewServer(svc, version)

	if stdio {
		slog.Info("Serving MCP over stdio")
		return mcpserver.ServeStdio(mcp)
	}

	h := server.NewHandler(svc, mcpserver.NewStreamableHTTPServer(mcp))
	srv := startServer(cfg.Addr, h.SetupRouter())

	waitForShutdown(srv)
	return nil
}

func startServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server is starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	return srv
}

func waitForShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited gracefully")
}
