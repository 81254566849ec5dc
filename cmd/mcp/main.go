package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/advent-of-code-2023/internal/mcpadapter"
	"github.com/povarna/advent-of-code-2023/internal/setup"
	applog "github.com/povarna/advent-of-code-2023/internal/setup/logger"
)

const version = "1.0.0"

func main() {
	// Load env
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()

	// stdout carries the MCP protocol, so logs go to stderr
	logger := applog.NewConsole(os.Stderr, cfg.LogLevel)
	if cfg.LogFormat == "json" {
		logger = applog.New(os.Stderr, cfg.LogLevel)
	}

	// Stdin belongs to the transport; puzzle text arrives as tool arguments.
	deps, err := setup.Wire(cfg, strings.NewReader(""), &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcpadapter.NewServer(deps.Executor, deps.Registry, version)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
