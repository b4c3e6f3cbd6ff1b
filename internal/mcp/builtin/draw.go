// Package builtin provides the in-process drawing tools served over MCP.
package builtin

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"chardraw/internal/canvas"
	"chardraw/internal/mcp"
	"chardraw/internal/scene"
	"chardraw/internal/surface"
)

func init() {
	mcp.DefaultToolRegistry.Register(
		mcplib.NewTool("render_scene",
			mcplib.WithDescription("Renders a YAML scene of shapes to quadrant block glyph text"),
			mcplib.WithString("scene",
				mcplib.Required(),
				mcplib.Description("Scene document: title, width, height and a list of shapes"),
			),
			mcplib.WithNumber("aspect",
				mcplib.Description("Horizontal stretch for circles and arcs (optional)"),
			),
		),
		func(env mcp.Env) mcp.ToolHandler {
			return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				args, err := ArgsOf(req)
				if err != nil {
					return nil, err
				}
				doc, err := args.RequiredString("scene")
				if err != nil {
					return nil, err
				}
				aspect := args.Number("aspect", env.Aspect)

				s, err := scene.Parse([]byte(doc))
				if err != nil {
					return mcplib.NewToolResultError(err.Error()), nil
				}
				buf, err := s.Render(canvas.WithAspect(aspect))
				if err != nil {
					return mcplib.NewToolResultError(err.Error()), nil
				}
				return mcplib.NewToolResultText(buf.String()), nil
			}
		},
	)

	mcp.DefaultToolRegistry.Register(
		mcplib.NewTool("glyph_table",
			mcplib.WithDescription("Lists the sixteen quadrant masks and their glyphs"),
		),
		func(mcp.Env) mcp.ToolHandler {
			return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				return mcplib.NewToolResultText(GlyphTable()), nil
			}
		},
	)

	mcp.DefaultToolRegistry.Register(
		mcplib.NewTool("decode_glyphs",
			mcplib.WithDescription("Lists the lit pixels of quadrant block glyph text, one \"x y\" pair per line"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Rendered glyph text"),
			),
		),
		func(mcp.Env) mcp.ToolHandler {
			return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
				args, err := ArgsOf(req)
				if err != nil {
					return nil, err
				}
				text, err := args.RequiredString("text")
				if err != nil {
					return nil, err
				}
				var sb strings.Builder
				surface.Decode(strings.Split(text, "\n"), func(x, y int) {
					fmt.Fprintf(&sb, "%d %d\n", x, y)
				})
				return mcplib.NewToolResultText(sb.String()), nil
			}
		},
	)
}

// GlyphTable returns one line per mask: decimal value, bit pattern, glyph
// and code point.
func GlyphTable() string {
	var sb strings.Builder
	for m := surface.Mask(0); m <= surface.Full; m++ {
		g := surface.Glyph(m)
		fmt.Fprintf(&sb, "%2d %04b %c U+%04X\n", m, m, g, g)
	}
	return sb.String()
}
