package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Local is an initialized MCP client talking to an in-process server.
// The CLI uses it to call a tool without a subprocess.
type Local struct {
	client *client.Client
	tools  map[string]mcplib.Tool
}

// Connect starts an in-process client for srv, initializes the session and
// fetches the tool list.
func Connect(ctx context.Context, srv *server.MCPServer, version string) (*Local, error) {
	c, err := client.NewInProcessClient(srv)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-process client: %w", err)
	}
	if err := c.Start(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to start client: %w", err)
	}

	initRequest := mcplib.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcplib.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcplib.Implementation{
		Name:    "chardraw",
		Version: version,
	}
	if _, err := c.Initialize(ctx, initRequest); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	l := &Local{client: c, tools: make(map[string]mcplib.Tool)}
	result, err := c.ListTools(ctx, mcplib.ListToolsRequest{})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	for _, tool := range result.Tools {
		l.tools[tool.Name] = tool
	}
	return l, nil
}

// Tool returns the definition of a tool by name.
func (l *Local) Tool(name string) (mcplib.Tool, bool) {
	tool, ok := l.tools[name]
	return tool, ok
}

// ToolCount returns the number of tools the server advertised.
func (l *Local) ToolCount() int {
	return len(l.tools)
}

// CallTool executes a tool by name with the given arguments.
func (l *Local) CallTool(ctx context.Context, name string, arguments map[string]any) (*mcplib.CallToolResult, error) {
	if _, ok := l.tools[name]; !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}

	callRequest := mcplib.CallToolRequest{}
	callRequest.Params.Name = name
	callRequest.Params.Arguments = arguments

	result, err := l.client.CallTool(ctx, callRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to call tool %s: %w", name, err)
	}
	return result, nil
}

// Text joins the text content of a tool result.
func Text(result *mcplib.CallToolResult) string {
	var sb strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(mcplib.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

// Close shuts down the client.
func (l *Local) Close() error {
	return l.client.Close()
}
