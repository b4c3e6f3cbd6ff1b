package builtin

import (
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// Args are the arguments of one tool call.
type Args map[string]any

// ArgsOf extracts the arguments map from a CallToolRequest.
func ArgsOf(req mcplib.CallToolRequest) (Args, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil, errors.New("invalid arguments format")
	}
	return Args(args), nil
}

// RequiredString returns a required string argument.
func (a Args) RequiredString(name string) (string, error) {
	val, ok := a[name].(string)
	if !ok {
		return "", fmt.Errorf("%s argument is required and must be a string", name)
	}
	return val, nil
}

// Number returns a numeric argument, or def when it is missing or not a
// number. JSON numbers arrive as float64; Go integers are accepted too.
func (a Args) Number(name string, def float64) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
