package app

import (
	"context"
	"io"

	"github.com/redspace/tmdb-mcp-server/internal/config"
	"github.com/redspace/tmdb-mcp-server/internal/mcp"
	"github.com/redspace/tmdb-mcp-server/internal/tmdb"
	"github.com/redspace/tmdb-mcp-server/internal/tools"
	"github.com/sirupsen/logrus"
)

// NewToolbox builds the TMDB MCP toolbox around a shared API client.
func NewToolbox(client *tmdb.Client, log *logrus.Entry) *mcp.Toolbox {
	return mcp.NewToolbox(
		tools.GetActorInfo(client, log),
		tools.GetMoviesByActor(client, log),
	)
}

// NewMCPServer constructs an MCP server from config with a live HTTP client.
func NewMCPServer(cfg config.Config, log *logrus.Entry) *mcp.Server {
	client := tmdb.NewClient(cfg, nil, log)
	return mcp.NewServer(NewToolbox(client, log))
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(cfg config.Config, log *logrus.Entry, addr string) error {
	return mcp.RunHTTP(NewMCPServer(cfg, log), addr)
}

// RunMCPStdio serves MCP over the provided stdio streams until EOF.
func RunMCPStdio(ctx context.Context, cfg config.Config, log *logrus.Entry, in io.Reader, out io.Writer) error {
	return mcp.RunStdio(ctx, NewMCPServer(cfg, log), in, out)
}
