package model

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer paints generations onto a tcell screen and listens for
// Esc, q or Ctrl+C to quit
type ScreenRenderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style

	statusRow int
	quit      chan struct{}
	quitOnce  sync.Once
}

// NewScreenRenderer initializes screen and starts polling it for key events
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	r := &ScreenRenderer{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		dead:   tcell.StyleDefault,
		status: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		quit:   make(chan struct{}),
	}
	go r.pollEvents()
	return r, nil
}

func (r *ScreenRenderer) pollEvents() {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.quitOnce.Do(func() { close(r.quit) })
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Clear clears the screen buffer; nothing is shown until Display
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	r.statusRow = 0
	return nil
}

// Display draws one rune per cell and shows the frame
func (r *ScreenRenderer) Display(g *Grid) error {
	for i := range g.cells {
		for j := range g.cells[i] {
			style := r.dead
			if g.cells[i][j].Alive {
				style = r.alive
			}
			r.screen.SetContent(j, i, g.cells[i][j].Char(), nil, style)
		}
	}
	r.statusRow = g.height
	r.screen.Show()
	return nil
}

// Status draws a line below the last drawn frame
func (r *ScreenRenderer) Status(line string) error {
	col := 0
	for _, ch := range line {
		r.screen.SetContent(col, r.statusRow, ch, nil, r.status)
		col++
	}
	r.statusRow++
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) Quit() <-chan struct{} { return r.quit }

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}
