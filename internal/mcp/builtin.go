// Package mcp exposes the drawing tools over the Model Context Protocol.
// Tools register themselves with DefaultToolRegistry from init functions
// and are served in-process by BuiltinServer.
package mcp

import (
	"context"
	"slices"
	"sync"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chardraw/internal/config"
)

// ToolHandler is the function signature for MCP tool handlers.
type ToolHandler func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error)

// Env is what a tool can see of the running application.
type Env struct {
	// Aspect is the default horizontal stretch for circles and arcs.
	Aspect float64
}

// EnvFromConfig builds the tool environment from the loaded configuration.
func EnvFromConfig(cfg *config.Config) Env {
	if cfg == nil {
		cfg = config.Default()
	}
	return Env{Aspect: cfg.Canvas.Aspect}
}

// ToolHandlerFactory creates a tool handler bound to env.
// Tools are registered at init time, before the environment is known.
type ToolHandlerFactory func(env Env) ToolHandler

// ToolRegistration holds a tool definition and its handler factory.
type ToolRegistration struct {
	Tool           mcplib.Tool
	HandlerFactory ToolHandlerFactory
}

// ToolRegistry holds all available builtin tools.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]ToolRegistration
}

// NewToolRegistry creates a new empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]ToolRegistration),
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool mcplib.Tool, handlerFactory ToolHandlerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = ToolRegistration{
		Tool:           tool,
		HandlerFactory: handlerFactory,
	}
}

// Get returns a tool registration by name.
func (r *ToolRegistry) Get(name string) (ToolRegistration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.tools[name]
	return reg, ok
}

// All returns all registrations ordered by tool name.
func (r *ToolRegistry) All() []ToolRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]ToolRegistration, 0, len(r.tools))
	for _, name := range r.names() {
		regs = append(regs, r.tools[name])
	}
	return regs
}

// Names returns the sorted names of all registered tools.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *ToolRegistry) names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Count returns the number of registered tools.
func (r *ToolRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// DefaultToolRegistry is the global tool registry instance.
var DefaultToolRegistry = NewToolRegistry()

// BuiltinServer hosts the tools of a registry on an MCP server.
type BuiltinServer struct {
	Registry *ToolRegistry
}

// Name returns the unique identifier for this server.
func (s *BuiltinServer) Name() string {
	return "chardraw"
}

// Description returns a human-readable description of the server.
func (s *BuiltinServer) Description() string {
	return "Block glyph drawing tools"
}

// Setup adds every registered tool to srv, bound to env.
func (s *BuiltinServer) Setup(srv *server.MCPServer, env Env) error {
	reg := s.Registry
	if reg == nil {
		reg = DefaultToolRegistry
	}
	for _, r := range reg.All() {
		srv.AddTool(r.Tool, server.ToolHandlerFunc(r.HandlerFactory(env)))
	}
	return nil
}
