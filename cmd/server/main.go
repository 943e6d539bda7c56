// file: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simplemcp/simplemcp/internal/catalog"
	"github.com/simplemcp/simplemcp/internal/config"
	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp"
)

// Version information - should be set during build via ldflags.
var (
	Version    = "0.1.0-dev" // Default development version
	commitHash = "unknown"   //nolint:unused // Set via ldflags during build
	buildDate  = "unknown"   //nolint:unused // Set via ldflags during build
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (optional).")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	showVersion := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *showVersion {
		fmt.Printf("simplemcp %s\n", Version)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		// Logging is not configured yet; stderr directly.
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %+v\n", err)
		os.Exit(1)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if *debug {
		level = logging.ParseLevel("debug")
	}
	// stdout carries the wire protocol; all log output goes to stderr.
	logging.SetDefaultLogger(logging.NewSlogLogger(os.Stderr, level))
	logger := logging.GetLogger("main")

	logger.Info("Starting server.",
		"name", cfg.Server.Name, "version", Version, "protocolVersion", cfg.Server.ProtocolVersion)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := mcp.NewServer(cfg, catalog.Default(), logger)
	if err != nil {
		logger.Error("Failed to construct server.", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}

	if err := server.ServeSTDIO(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server failed.", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
	logger.Info("Server exited.")
}

// loadConfig resolves the effective configuration: defaults plus environment
// when no file is given, or the file merged over defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadFromFile(path)
}
