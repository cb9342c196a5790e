package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Parley ASCII banner with the given version.
// Colors degrade to plain text when w is not a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []struct {
		text  string
		color string
	}{
		{"  ___          _          ", "#818cf8"},
		{" | _ \\__ _ _ _| |___ _  _ ", "#a78bfa"},
		{" |  _/ _` | '_| / -_) || |", "#c084fc"},
		{" |_| \\__,_|_| |_\\___|\\_, |", "#e879f9"},
		{"                     |__/ ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		if p == termenv.Ascii {
			fmt.Fprintln(w, l.text)
			continue
		}
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  v%s\n\n", version)
}
