package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// clearScreen erases the terminal and homes the cursor
const clearScreen = "\x1B[2J\x1B[1;1H"

// Renderer paints completed generations. Implementations are only called
// between updates, so they never observe a half-applied generation.
type Renderer interface {
	Clear() error
	Display(g *Grid) error
	Status(line string) error
	// Quit fires when the user asks to stop; nil if the renderer has no input.
	Quit() <-chan struct{}
	Close() error
}

// TerminalRenderer writes plain text frames to Out using ANSI escapes
type TerminalRenderer struct {
	Out io.Writer
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, clearScreen); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to write escape sequence")
	}
	return nil
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for i := range g.cells {
		for j := range g.cells[i] {
			sb.WriteRune(g.cells[i][j].Char())
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrapf(err, "[TerminalRenderer.Display] failed to write %dx%d frame", g.width, g.height)
	}
	return nil
}

// Status writes a single status line
func (r *TerminalRenderer) Status(line string) error {
	if _, err := io.WriteString(r.Out, line+"\n"); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Status] failed to write status")
	}
	return nil
}

func (r *TerminalRenderer) Quit() <-chan struct{} { return nil }

func (r *TerminalRenderer) Close() error { return nil }
