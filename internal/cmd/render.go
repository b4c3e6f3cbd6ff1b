package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"chardraw/internal/canvas"
	"chardraw/internal/config"
	"chardraw/internal/scene"
	"chardraw/internal/snapshot"
	"chardraw/internal/terminal"
)

// CmdRender draws a scene file once.
var CmdRender = &cli.Command{
	Name:      "render",
	Usage:     "Render a scene file",
	ArgsUsage: "<scene.yaml>",
	Description: `Shapes are drawn in order. Each shape has a kind (pixel, line, rect,
circle, arc, polygon, polyline, text), a color and the coordinates its kind
needs, in sub-pixels. Shapes marked "erase" toggle pixels off instead.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "save",
			Usage: "Also store the frame as a snapshot called `NAME`",
		},
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "Never colour the output",
		},
		aspectFlag,
	},
	Action: runRender,
}

var aspectFlag = &cli.Float64Flag{
	Name:  "aspect",
	Usage: "Horizontal stretch of circles and arcs (defaults to canvas.aspect)",
}

func aspectOf(c *cli.Context, cfg *config.Config) float64 {
	if c.IsSet("aspect") {
		return c.Float64("aspect")
	}
	return cfg.Canvas.Aspect
}

func sceneArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one scene file, got %d arguments", c.NArg())
	}
	return c.Args().First(), nil
}

func runRender(c *cli.Context) error {
	path, err := sceneArg(c)
	if err != nil {
		return err
	}
	st := stateOf(c)

	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	buf, err := sc.Render(canvas.WithAspect(aspectOf(c, st.cfg)))
	if err != nil {
		return err
	}

	colored := !c.Bool("plain") && isTerminal(c.App.Writer)
	if err := writeBuffer(c.App.Writer, buf, st.palette, colored); err != nil {
		return err
	}

	if name := c.String("save"); name != "" {
		store, err := snapshot.NewStore(st.cfg.Snapshots.Dir)
		if err != nil {
			return err
		}
		snap := snapshot.New(name, buf)
		if err := store.Save(snap); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.ErrWriter, "Saved snapshot %q (%s)\n", snap.Name, shortID(snap.ID))
	}
	return nil
}

func writeBuffer(w io.Writer, buf *terminal.Buffer, palette *terminal.Palette, colored bool) error {
	if colored {
		return buf.WriteANSI(w, palette)
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
