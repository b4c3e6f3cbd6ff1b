package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"chardraw/internal/animate"
	"chardraw/internal/canvas"
	"chardraw/internal/terminal"
)

// CmdDemo plays one of the built-in animations.
var CmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "Play a built-in animation until interrupted",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "animation",
			Value: "sweep",
			Usage: "Animation to play: sweep or orbit",
		},
		&cli.DurationFlag{
			Name:  "duration",
			Usage: "Stop after this long (0 plays until interrupted)",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: animate.DefaultInterval,
			Usage: "Time between frames",
		},
		&cli.IntFlag{
			Name:  "frames",
			Value: 1,
			Usage: "Frames to draw before printing when the output is not a terminal",
		},
		aspectFlag,
	},
	Action: runDemo,
}

func newAnimation(name string, cv *canvas.Canvas) (animate.Animation, error) {
	switch name {
	case "sweep":
		return animate.NewSweep(cv, 0), nil
	case "orbit":
		return animate.NewOrbit(cv, 24), nil
	}
	return nil, fmt.Errorf("unknown animation %q", name)
}

func runDemo(c *cli.Context) error {
	st := stateOf(c)
	opt := canvas.WithAspect(aspectOf(c, st.cfg))

	if !isTerminal(c.App.Writer) {
		buf := terminal.NewBuffer(st.cfg.Terminal.Rows, st.cfg.Terminal.Cols)
		anim, err := newAnimation(c.String("animation"), canvas.New(buf, opt))
		if err != nil {
			return err
		}
		anim.Start()
		for i := 1; i < c.Int("frames"); i++ {
			anim.Render()
		}
		return writeBuffer(c.App.Writer, buf, st.palette, false)
	}

	rows, cols := terminal.Size(os.Stdout, st.cfg.Terminal.Rows, st.cfg.Terminal.Cols)
	screen := terminal.NewANSI(c.App.Writer, st.palette, rows, cols)
	anim, err := newAnimation(c.String("animation"), canvas.New(screen, opt))
	if err != nil {
		return err
	}
	if err := screen.Open(); err != nil {
		return err
	}
	defer screen.Close()

	animator := animate.NewAnimator(anim)
	animator.SetInterval(c.Duration("interval"))
	animator.Start(c.Context)
	defer animator.Stop()

	var timeout <-chan time.Time
	if d := c.Duration("duration"); d > 0 {
		timeout = time.After(d)
	}
	select {
	case <-c.Context.Done():
	case <-timeout:
	}
	return nil
}
