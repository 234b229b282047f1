package calendar

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Painter writes rendered lines to a terminal. Styling stays out of the
// renderer: each cell kind is mapped to an ANSI style here, and the color
// package drops the escape codes on its own when the output is not a
// terminal or NO_COLOR is set.
type Painter struct {
	styles map[CellKind]*color.Color
}

func NewPainter() *Painter {
	return &Painter{
		styles: map[CellKind]*color.Color{
			CellHeader:    color.New(color.FgBlack, color.BgBlue),
			CellWeekday:   color.New(color.FgBlack, color.BgGreen),
			CellWeekend:   color.New(color.FgBlack, color.BgRed),
			CellSeparator: color.New(color.FgBlack, color.BgCyan),
		},
	}
}

// DisableColors turns off ANSI styling for every painter.
func DisableColors() {
	color.NoColor = true
}

// Print writes each line of cells followed by a newline.
func (p *Painter) Print(w io.Writer, lines []Line) error {
	for _, line := range lines {
		for _, cell := range line {
			style, ok := p.styles[cell.Kind]
			if !ok {
				if _, err := fmt.Fprint(w, cell.Text); err != nil {
					return err
				}
				continue
			}
			if _, err := style.Fprint(w, cell.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
