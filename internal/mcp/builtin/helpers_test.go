package builtin

import (
	"testing"
	"testing/quick"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func makeCallToolRequest(args any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      "test_tool",
			Arguments: args,
		},
	}
}

// getTextContent extracts the first text content of a CallToolResult.
func getTextContent(result *mcplib.CallToolResult) (string, bool) {
	if result == nil || len(result.Content) == 0 {
		return "", false
	}
	textContent, ok := result.Content[0].(mcplib.TextContent)
	if !ok {
		return "", false
	}
	return textContent.Text, true
}

func TestArgsOf(t *testing.T) {
	tests := []struct {
		name    string
		args    any
		wantErr bool
	}{
		{"map", map[string]any{"scene": "x"}, false},
		{"empty map", map[string]any{}, false},
		{"nil", nil, true},
		{"string", "scene", true},
		{"slice", []any{"scene"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ArgsOf(makeCallToolRequest(tt.args))
			if (err != nil) != tt.wantErr {
				t.Errorf("ArgsOf() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArgsString(t *testing.T) {
	args := Args{"text": "▀▄", "n": 3, "empty": ""}

	if got, err := args.RequiredString("text"); err != nil || got != "▀▄" {
		t.Errorf("RequiredString(text) = %q, %v", got, err)
	}
	if got, err := args.RequiredString("empty"); err != nil || got != "" {
		t.Errorf("RequiredString(empty) = %q, %v", got, err)
	}
	if _, err := args.RequiredString("n"); err == nil {
		t.Error("RequiredString(n) should reject a number")
	}
	if _, err := args.RequiredString("missing"); err == nil {
		t.Error("RequiredString(missing) should fail")
	}
}

func TestArgsNumber(t *testing.T) {
	args := Args{"f": 1.5, "i": 3, "i64": int64(4), "s": "2", "zero": 0.0}
	tests := []struct {
		key  string
		want float64
	}{
		{"f", 1.5},
		{"i", 3},
		{"i64", 4},
		{"s", 20},
		{"zero", 0},
		{"missing", 20},
	}
	for _, tt := range tests {
		if got := args.Number(tt.key, 20); got != tt.want {
			t.Errorf("Number(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestArgsStringProperty(t *testing.T) {
	property := func(value string) bool {
		got, err := Args{"key": value}.RequiredString("key")
		return err == nil && got == value
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestArgsNumberProperty(t *testing.T) {
	property := func(value, def float64) bool {
		return Args{"key": value}.Number("key", def) == value && Args{}.Number("key", def) == def
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
