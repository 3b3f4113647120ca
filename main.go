package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redspace/tmdb-mcp-server/internal/app"
	"github.com/redspace/tmdb-mcp-server/internal/config"
	"github.com/redspace/tmdb-mcp-server/internal/logging"
)

// Serves MCP over stdio: JSON-RPC requests on stdin, responses on stdout.
// Logs go to logs/mcp-stdio.log so stdout stays protocol-clean.
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logger, cleanup, err := logging.New("mcp-stdio")
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer cleanup()

	logger.Info("TMDB MCP server starting on stdio")
	if err := app.RunMCPStdio(context.Background(), cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Error("stdio server stopped")
		os.Exit(1)
	}
}
