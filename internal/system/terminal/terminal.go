// Released under an MIT license. See LICENSE.

// Package terminal reports terminal dimensions and fits text to them.
package terminal

const ellipsis = "..."

// Clip shortens s to at most width bytes. Clipped text ends with an
// ellipsis. A width less than one leaves s unchanged.
func Clip(s string, width int) string {
	if width < 1 || len(s) <= width {
		return s
	}

	if width <= len(ellipsis) {
		return s[:width]
	}

	return s[:width-len(ellipsis)] + ellipsis
}
