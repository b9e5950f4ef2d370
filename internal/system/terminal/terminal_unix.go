// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package terminal

import (
	"golang.org/x/sys/unix"
)

// Platform names the family of systems this package was built for.
const Platform = "unix"

// Width returns the number of columns for the terminal fd, or zero if fd
// is not a terminal.
func Width(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}

	return int(ws.Col)
}
