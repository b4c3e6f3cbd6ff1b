package builtin

import (
	"context"
	"strings"
	"testing"

	"chardraw/internal/mcp"
)

func handler(t *testing.T, name string, env mcp.Env) mcp.ToolHandler {
	t.Helper()
	reg, ok := mcp.DefaultToolRegistry.Get(name)
	if !ok {
		t.Fatalf("%s tool not registered", name)
	}
	return reg.HandlerFactory(env)
}

func TestToolsRegistered(t *testing.T) {
	want := []string{"decode_glyphs", "glyph_table", "render_scene"}
	got := mcp.DefaultToolRegistry.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRenderScene(t *testing.T) {
	h := handler(t, "render_scene", mcp.Env{Aspect: 2})

	tests := []struct {
		name      string
		args      map[string]any
		want      string
		wantError bool
	}{
		{
			name: "line",
			args: map[string]any{"scene": "shapes:\n  - kind: line\n    points: [[0, 0], [3, 0]]\n"},
			want: "▀▀",
		},
		{
			name: "pixel",
			args: map[string]any{"scene": "shapes:\n  - kind: pixel\n    x: 1\n    y: 1\n"},
			want: "▗",
		},
		{
			name:      "unknown kind",
			args:      map[string]any{"scene": "shapes:\n  - kind: star\n"},
			wantError: true,
		},
		{
			name:      "bad yaml",
			args:      map[string]any{"scene": "shapes: [\n"},
			wantError: true,
		},
		{
			name:      "far pixel",
			args:      map[string]any{"scene": "shapes:\n  - kind: pixel\n    x: 1e12\n"},
			wantError: true,
		},
		{
			name:      "stretched past the size limit",
			args:      map[string]any{"scene": "shapes:\n  - kind: circle\n    x: 4\n    y: 4\n    r: 2\n", "aspect": 1e9},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h(context.Background(), makeCallToolRequest(tt.args))
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if result.IsError != tt.wantError {
				t.Fatalf("IsError = %v, want %v", result.IsError, tt.wantError)
			}
			if tt.wantError {
				return
			}
			if got, _ := getTextContent(result); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSceneMissingArgument(t *testing.T) {
	h := handler(t, "render_scene", mcp.Env{Aspect: 2})
	if _, err := h(context.Background(), makeCallToolRequest(map[string]any{})); err == nil {
		t.Error("expected an error without a scene argument")
	}
}

func TestRenderSceneAspect(t *testing.T) {
	doc := "shapes:\n  - kind: circle\n    x: 10\n    y: 6\n    r: 4\n"
	render := func(env mcp.Env, args map[string]any) string {
		t.Helper()
		result, err := handler(t, "render_scene", env)(context.Background(), makeCallToolRequest(args))
		if err != nil || result.IsError {
			t.Fatalf("render_scene failed: %v %+v", err, result)
		}
		text, _ := getTextContent(result)
		return text
	}

	stretched := render(mcp.Env{Aspect: 2}, map[string]any{"scene": doc})
	round := render(mcp.Env{Aspect: 2}, map[string]any{"scene": doc, "aspect": 1.0})
	if stretched == round {
		t.Error("aspect argument had no effect")
	}
	if got := render(mcp.Env{Aspect: 1}, map[string]any{"scene": doc}); got != round {
		t.Errorf("env aspect 1 = %q, want %q", got, round)
	}
}

func TestGlyphTable(t *testing.T) {
	h := handler(t, "glyph_table", mcp.Env{})
	result, err := h(context.Background(), makeCallToolRequest(map[string]any{}))
	if err != nil {
		t.Fatal(err)
	}
	text, _ := getTextContent(result)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	tests := map[int]string{
		0:  " 0 0000   U+0020",
		1:  " 1 0001 ▘ U+2598",
		6:  " 6 0110 ▞ U+259E",
		15: "15 1111 █ U+2588",
	}
	for i, want := range tests {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestDecodeGlyphs(t *testing.T) {
	h := handler(t, "decode_glyphs", mcp.Env{})
	tests := []struct {
		text string
		want string
	}{
		{"▗", "1 1\n"},
		{"█", "0 0\n1 0\n0 1\n1 1\n"},
		{" ▘\n▝", "2 0\n1 2\n"},
		{"abc", ""},
	}
	for _, tt := range tests {
		result, err := h(context.Background(), makeCallToolRequest(map[string]any{"text": tt.text}))
		if err != nil {
			t.Fatalf("decode %q: %v", tt.text, err)
		}
		if got, _ := getTextContent(result); got != tt.want {
			t.Errorf("decode %q = %q, want %q", tt.text, got, tt.want)
		}
	}
}
