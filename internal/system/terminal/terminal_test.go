// Released under an MIT license. See LICENSE.

package terminal

import (
	"os"
	"testing"
)

func TestClip(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{"B+ I# I$", 0, "B+ I# I$"},
		{"B+ I# I$", 8, "B+ I# I$"},
		{"B+ I# I$", 7, "B+ I..."},
		{"B+ I# I$", 3, "B+ "},
		{"B+ I# I$", 2, "B+"},
	}

	for _, tt := range tests {
		if actual := Clip(tt.s, tt.width); actual != tt.expected {
			t.Fatalf("Clip(%q, %d): expected %q; got %q", tt.s, tt.width, tt.expected, actual)
		}
	}
}

func TestWidthOfNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "width")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if w := Width(int(f.Fd())); w != 0 {
		t.Fatalf("Expected zero width for a regular file; got %d", w)
	}
}
