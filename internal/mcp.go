package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/hasher"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
	"github.com/starford/ansuz/internal/mcpserver"
)

// RunMCP serves the inspection tools over MCP stdio. Logs go to stderr;
// stdout belongs to the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.Level(),
	}))
	slog.SetDefault(logger)

	h := hasher.New(cfg.Hasher.Secret)
	srv := mcpserver.New(
		fingerprint.DefaultRuleset(),
		loader.New(app.fs, h),
		markdown.NewSplitter(markdown.NewDetector(), h),
	)

	logger.Info("mcp server listening on stdio")
	return srv.ServeStdio()
}
