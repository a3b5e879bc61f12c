// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes target inspection tools over stdio, so LLM clients can pull
// structured context out of local files.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/fingerprint"
	"github.com/starford/ansuz/internal/loader"
	"github.com/starford/ansuz/internal/markdown"
)

// Server wraps the MCP server with the inspection tools.
type Server struct {
	mcp      *server.MCPServer
	rules    *fingerprint.Ruleset
	loader   *loader.Loader
	splitter *markdown.Splitter
}

// New creates a new MCP server with all tools registered.
func New(rules *fingerprint.Ruleset, l *loader.Loader, s *markdown.Splitter) *Server {
	srv := &Server{rules: rules, loader: l, splitter: s}

	srv.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	srv.mcp.AddTool(mcp.NewTool("classify_target",
		mcp.WithDescription("Classify a target string (typically a file path) as markdown, html, or unknown."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Target string to classify")),
	), srv.classifyTarget)

	srv.mcp.AddTool(mcp.NewTool("inspect_markdown",
		mcp.WithDescription("Load a local markdown file and return its structured context: "+
			"frontmatter, prose with content hash, and file metadata."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to a local markdown file")),
	), srv.inspectMarkdown)

	srv.mcp.AddTool(mcp.NewTool("extract_frontmatter",
		mcp.WithDescription("Return only the frontmatter block of a local markdown file, decoded to JSON."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to a local markdown file")),
	), srv.extractFrontmatter)

	return srv
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) classifyTarget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t := s.rules.Classify(target)
	return mcp.NewToolResultText(string(t.Kind)), nil
}

// document runs the full markdown pipeline for one path.
func (s *Server) document(path string) (markdown.Document, error) {
	meta, err := s.loader.Stat(path)
	if err != nil {
		return markdown.Document{}, err
	}
	fc, err := s.loader.LoadContent(meta)
	if err != nil {
		return markdown.Document{}, err
	}
	return s.splitter.FromFileContent(fc)
}

func (s *Server) inspectMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.document(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) extractFrontmatter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.document(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !doc.HasFrontmatter {
		return mcp.NewToolResultText("no frontmatter"), nil
	}
	out, _ := json.MarshalIndent(doc.Frontmatter, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
