// Package cmd holds the chardraw command line application.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"chardraw/internal/config"
	"chardraw/internal/logging"
	"chardraw/internal/terminal"
)

// state is what Before prepares for the subcommands.
type state struct {
	cfg     *config.Config
	palette *terminal.Palette
}

const stateKey = "state"

func stateOf(c *cli.Context) *state {
	if st, ok := c.App.Metadata[stateKey].(*state); ok {
		return st
	}
	cfg := config.Default()
	return &state{cfg: cfg, palette: terminal.Init(cfg.Terminal)}
}

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE` (defaults to ./" + config.DefaultConfigPath + " when present)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log at debug level",
		},
	}
}

// NewMainApp creates the application with every subcommand registered.
func NewMainApp(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "chardraw"
	app.Usage = "Draw lines, shapes and text with quadrant block glyphs"
	app.Description = `chardraw rasterizes vector scenes onto a grid of character cells, four
sub-pixels per cell. Scenes are YAML documents; see "chardraw render --help".`
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = appGlobalFlags()
	app.Before = prepare
	app.Commands = []*cli.Command{
		CmdRender,
		CmdWatch,
		CmdDemo,
		CmdGlyphs,
		CmdSnapshots,
		CmdMCP,
	}
	return app
}

// prepare loads the configuration and installs the logger.
func prepare(c *cli.Context) error {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if c.Bool("verbose") {
		level, _ = logging.ParseLevel("debug")
	}
	logging.SetLogger(logging.NewTextLogger(c.App.ErrWriter, level))

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[stateKey] = &state{cfg: cfg, palette: terminal.Init(cfg.Terminal)}
	return nil
}

// RunMainApp runs app with args and reports a failure on the app's error
// writer.
func RunMainApp(ctx context.Context, app *cli.App, args ...string) error {
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Error: %v\n", err)
	return err
}

// isTerminal reports whether w is a terminal device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f)
}
