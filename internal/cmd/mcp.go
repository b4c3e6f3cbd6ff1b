package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"chardraw/internal/mcp"
	_ "chardraw/internal/mcp/builtin" // registers the drawing tools
)

// CmdMCP serves the drawing tools over MCP on stdio.
var CmdMCP = &cli.Command{
	Name:  "mcp",
	Usage: "Serve the drawing tools to an MCP client on stdin/stdout",
	Subcommands: []*cli.Command{
		{
			Name:      "call",
			Usage:     "Call one tool in-process and print its text result",
			ArgsUsage: "<tool> [name=value ...]",
			Description: `Values that parse as numbers are passed as numbers. A value starting
with @ is replaced by the contents of the named file, e.g.
  chardraw mcp call render_scene scene=@house.yaml`,
			Action: runMCPCall,
		},
	},
	Action: runMCPServe,
}

func runMCPServe(c *cli.Context) error {
	srv, err := mcp.NewServer(c.App.Version, mcp.EnvFromConfig(stateOf(c).cfg))
	if err != nil {
		return err
	}
	return mcp.ServeStdio(srv)
}

func runMCPCall(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("expected a tool name")
	}
	args, err := parseToolArgs(c.Args().Tail())
	if err != nil {
		return err
	}

	srv, err := mcp.NewServer(c.App.Version, mcp.EnvFromConfig(stateOf(c).cfg))
	if err != nil {
		return err
	}
	local, err := mcp.Connect(c.Context, srv, c.App.Version)
	if err != nil {
		return err
	}
	defer local.Close()

	result, err := local.CallTool(c.Context, c.Args().First(), args)
	if err != nil {
		return err
	}
	text := mcp.Text(result)
	if result.IsError {
		return errors.New(text)
	}
	_, err = fmt.Fprintln(c.App.Writer, strings.TrimSuffix(text, "\n"))
	return err
}

// parseToolArgs turns name=value pairs into tool arguments.
func parseToolArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not name=value", pair)
		}
		if path, ok := strings.CutPrefix(value, "@"); ok {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", name, err)
			}
			args[name] = string(data)
			continue
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			args[name] = f
			continue
		}
		args[name] = value
	}
	return args, nil
}
