package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redspace/tmdb-mcp-server/internal/app"
	"github.com/redspace/tmdb-mcp-server/internal/config"
	"github.com/redspace/tmdb-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ":3333"), "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	cfg := config.MustLoad()
	logger := logging.NewStderr("mcp-server")

	logger.Infof("TMDB MCP server listening on %s", *httpAddr)
	if err := app.RunMCPHTTP(cfg, logger, *httpAddr); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
