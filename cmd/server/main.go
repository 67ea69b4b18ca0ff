package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/linkscout/internal/config"
	"github.com/honeycarbs/linkscout/internal/mcp"
	"github.com/honeycarbs/linkscout/pkg/logging"
	"github.com/honeycarbs/linkscout/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := mcp.NewServer(logger, cfg)
	if err != nil {
		logger.Error("failed to initialize MCP server", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"backend", cfg.Backend,
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
