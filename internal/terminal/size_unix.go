//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DetectSize queries the window size of the terminal behind fd.
func DetectSize(fd uintptr) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query terminal size: %w", err)
	}
	if ws.Row == 0 || ws.Col == 0 {
		return 0, 0, fmt.Errorf("terminal reports empty size %dx%d", ws.Row, ws.Col)
	}
	return int(ws.Row), int(ws.Col), nil
}
