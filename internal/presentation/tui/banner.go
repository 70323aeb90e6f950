package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Arbor ASCII art banner to w using profile p.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Using a green gradient, darkest at the trunk
	lines := []struct {
		text, color string
	}{
		{"     _          _             ", "#bbf7d0"},
		{"    / \\   _ __ | |__   ___  _ __", "#86efac"},
		{"   / _ \\ | '__|| '_ \\ / _ \\| '__|", "#4ade80"},
		{"  / ___ \\| |   | |_) | (_) | |", "#22c55e"},
		{" /_/   \\_\\_|   |_.__/ \\___/|_|", "#16a34a"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
