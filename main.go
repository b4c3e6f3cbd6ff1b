// Command chardraw draws vector scenes with quadrant block glyphs.
package main

import (
	"context"
	"os"

	"chardraw/internal/cmd"
	"chardraw/internal/signal"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	app := cmd.NewMainApp(Version)
	err := signal.RunWithContext(func(ctx context.Context) error {
		return cmd.RunMainApp(ctx, app, os.Args...)
	})
	if err != nil {
		os.Exit(1)
	}
}
