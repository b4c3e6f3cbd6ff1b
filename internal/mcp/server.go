package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"chardraw/internal/logging"
)

// NewServer creates an MCP server with the builtin tools bound to env.
func NewServer(version string, env Env) (*server.MCPServer, error) {
	b := &BuiltinServer{}
	srv := server.NewMCPServer(b.Name(), version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(b.Description()),
	)
	if err := b.Setup(srv, env); err != nil {
		return nil, fmt.Errorf("setup %s: %w", b.Name(), err)
	}
	logging.Logger().Debug("mcp server ready", "tools", DefaultToolRegistry.Count())
	return srv, nil
}

// ServeStdio serves srv on standard input and output until the input closes.
func ServeStdio(srv *server.MCPServer) error {
	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("serve stdio: %w", err)
	}
	return nil
}
