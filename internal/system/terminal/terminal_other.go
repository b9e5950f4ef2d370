// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package terminal

// Platform names the family of systems this package was built for.
const Platform = "other"

// Width returns zero. Terminal dimensions are not available.
func Width(_ int) int {
	return 0
}
