//go:build !unix

package terminal

import "errors"

// DetectSize is not supported on this platform; callers fall back to the
// configured size.
func DetectSize(fd uintptr) (rows, cols int, err error) {
	return 0, 0, errors.New("terminal size detection not supported")
}
