/*
Package dump renders denseidx wrappers for human consumption during
debugging. Output is a simple position-order table, one line per
element, with the minted domain index on the left:

	employees · 3 elements (*backend.Vector[employee])
	  employee(0) = {Alice Smith}
	  employee(1) = {Bob Jones}
	  employee(2) = {Charlie Brown}

Colors follow the fatih/color conventions; piping the output disables
them automatically.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/denseidx"
	"golang.org/x/term"
)

// A Palette maps the parts of a dump to colors. Any entry may be nil for
// uncolored output.
type Palette struct {
	Title *color.Color
	Index *color.Color
	Value *color.Color
}

func defaultPalette() *Palette {
	return &Palette{
		Title: color.New(color.Bold),
		Index: color.New(color.FgCyan),
		Value: color.New(color.FgWhite),
	}
}

// LineWidth returns the width in character cells available on the
// terminal behind stdout, or fallback if stdout is not interactive.
func LineWidth(fallback int) int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Table writes a position-order dump of d to w, one element per line,
// labelled title. A nil palette selects default colors; value lines are
// truncated to width (0 selects the terminal width, falling back to 80).
func Table[I denseidx.Strong, V any, C denseidx.Container[V]](w io.Writer, title string,
	d *denseidx.Dense[I, V, C], palette *Palette, width int) {
	//
	if palette == nil {
		palette = defaultPalette()
	}
	if width <= 0 {
		width = LineWidth(80)
	}
	cprintf(w, palette.Title, "%s · %d elements (%T)\n", title, d.Len(), d.Underlying())
	for idx, v := range d.All() {
		label := fmt.Sprintf("%v", idx)
		line := fmt.Sprintf("%v", v)
		if limit := width - len(label) - 5; limit > 3 && len(line) > limit {
			line = line[:limit-1] + "…"
		}
		cprintf(w, palette.Index, "  %s", label)
		cprintf(w, nil, " = ")
		cprintf(w, palette.Value, "%s\n", line)
	}
}

func cprintf(w io.Writer, c *color.Color, format string, args ...interface{}) {
	if c != nil {
		c.Fprintf(w, format, args...)
		return
	}
	fmt.Fprintf(w, format, args...)
}
