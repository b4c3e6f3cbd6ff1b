package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"chardraw/internal/snapshot"
	"chardraw/internal/table"
)

// CmdSnapshots manages saved frames.
var CmdSnapshots = &cli.Command{
	Name:  "snapshots",
	Usage: "List, show and delete saved frames",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "List saved frames, newest first",
			Action: runSnapshotsList,
		},
		{
			Name:      "show",
			Usage:     "Print a saved frame",
			ArgsUsage: "<id or prefix>",
			Action:    runSnapshotsShow,
		},
		{
			Name:      "delete",
			Usage:     "Delete a saved frame",
			ArgsUsage: "<id or prefix>",
			Action:    runSnapshotsDelete,
		},
	},
}

func openStore(c *cli.Context) (*snapshot.Store, error) {
	return snapshot.NewStore(stateOf(c).cfg.Snapshots.Dir)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func refArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected a snapshot id, got %d arguments", c.NArg())
	}
	return c.Args().First(), nil
}

func runSnapshotsList(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	snaps, err := store.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		_, err := fmt.Fprintln(c.App.Writer, "No snapshots.")
		return err
	}

	t := table.New(
		table.Column{Header: "ID", MinWidth: 8},
		table.Column{Header: "NAME", MaxWidth: 40},
		table.Column{Header: "SIZE", Align: table.AlignRight},
		table.Column{Header: "CREATED"},
	).Styled(isTerminal(c.App.Writer))
	for _, s := range snaps {
		t.AddRow(shortID(s.ID), s.Name, fmt.Sprintf("%dx%d", s.Cols, s.Rows), humanize.Time(s.CreatedAt))
	}
	return t.Print(c.App.Writer, "")
}

func runSnapshotsShow(c *cli.Context) error {
	ref, err := refArg(c)
	if err != nil {
		return err
	}
	store, err := openStore(c)
	if err != nil {
		return err
	}
	s, err := store.Find(ref)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, s.String())
	return err
}

func runSnapshotsDelete(c *cli.Context) error {
	ref, err := refArg(c)
	if err != nil {
		return err
	}
	store, err := openStore(c)
	if err != nil {
		return err
	}
	s, err := store.Find(ref)
	if err != nil {
		return err
	}
	if err := store.Delete(s.ID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.ErrWriter, "Deleted snapshot %q (%s)\n", s.Name, shortID(s.ID))
	return err
}
