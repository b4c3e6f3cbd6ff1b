package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"chardraw/internal/canvas"
	"chardraw/internal/logging"
	"chardraw/internal/scene"
	"chardraw/internal/terminal"
	"chardraw/internal/watch"
)

// CmdWatch redraws a scene file whenever it is saved.
var CmdWatch = &cli.Command{
	Name:      "watch",
	Usage:     "Redraw a scene file whenever it changes",
	ArgsUsage: "<scene.yaml>",
	Flags:     []cli.Flag{aspectFlag},
	Action:    runWatch,
}

func runWatch(c *cli.Context) error {
	path, err := sceneArg(c)
	if err != nil {
		return err
	}
	st := stateOf(c)
	aspect := aspectOf(c, st.cfg)
	log := logging.Logger().With("scene", path)

	if !isTerminal(c.App.Writer) {
		return watch.Watch(c.Context, path, func(sc *scene.Scene, err error) {
			if err != nil {
				log.Error("reload failed", "err", err)
				return
			}
			buf, err := sc.Render(canvas.WithAspect(aspect))
			if err != nil {
				log.Error("draw failed", "err", err)
				return
			}
			if err := writeBuffer(c.App.Writer, buf, st.palette, false); err != nil {
				log.Error("write failed", "err", err)
			}
			_, _ = fmt.Fprintln(c.App.Writer)
		})
	}

	rows, cols := terminal.Size(os.Stdout, st.cfg.Terminal.Rows, st.cfg.Terminal.Cols)
	screen := terminal.NewANSI(c.App.Writer, st.palette, rows, cols)
	if err := screen.Open(); err != nil {
		return err
	}
	defer screen.Close()

	cv := canvas.New(screen, canvas.WithAspect(aspect))
	return watch.Watch(c.Context, path, func(sc *scene.Scene, err error) {
		if err != nil {
			log.Error("reload failed", "err", err)
			return
		}
		cv.Clear()
		if err := sc.Draw(cv); err != nil {
			log.Error("draw failed", "err", err)
		}
		if err := cv.Refresh(); err != nil {
			log.Error("refresh failed", "err", err)
		}
	})
}
