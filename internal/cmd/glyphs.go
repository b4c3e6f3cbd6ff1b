package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"chardraw/internal/surface"
	"chardraw/internal/table"
)

// CmdGlyphs prints the quadrant mask table.
var CmdGlyphs = &cli.Command{
	Name:   "glyphs",
	Usage:  "List the sixteen quadrant masks and their glyphs",
	Action: runGlyphs,
}

func runGlyphs(c *cli.Context) error {
	t := table.New(
		table.Column{Header: "MASK", Align: table.AlignRight},
		table.Column{Header: "BITS"},
		table.Column{Header: "GLYPH"},
		table.Column{Header: "CODE"},
	).Styled(isTerminal(c.App.Writer))

	for m := surface.Mask(0); m <= surface.Full; m++ {
		g := surface.Glyph(m)
		t.AddRow(fmt.Sprint(int(m)), fmt.Sprintf("%04b", m), string(g), fmt.Sprintf("U+%04X", g))
	}
	return t.Print(c.App.Writer, "")
}
