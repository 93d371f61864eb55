package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"didact/internal/adapters/host"
	mcpadapter "didact/internal/adapters/mcp"
	"didact/internal/bootstrap"
	"didact/internal/config"
	"didact/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to a didact.yaml configuration file")
	flag.Parse()

	cfg, err := config.Load(config.LoadOptions{ExplicitFilePath: *configFlag})
	if err != nil {
		log.Fatalf("didact-mcp: %v", err)
	}
	logger, err := logging.NewLogger(cfg.LogLevel())
	if err != nil {
		log.Fatalf("didact-mcp: %v", err)
	}
	defer logger.Sync()

	// stdout carries the protocol; notifications and command output go to stderr
	rt, err := bootstrap.New(context.Background(), bootstrap.Options{
		Config:   cfg,
		Notifier: host.NewConsoleNotifier(os.Stderr),
		Logger:   logger,
		Out:      os.Stderr,
	})
	if err != nil {
		log.Fatalf("didact-mcp: %v", err)
	}
	defer rt.Close()

	mcpServer := server.NewMCPServer(
		"didact-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, rt.Registry, rt.Outline, rt.Completion)
	mcpadapter.RegisterWriteTools(mcpServer, rt.Registry, rt.Links)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("didact-mcp: %v", err)
	}
}
