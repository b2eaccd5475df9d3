package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	g := gridWith(3, 2, Position{0, 0}, Position{1, 2})

	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}
	if err := r.Status("iter: 0"); err != nil {
		t.Fatal(err)
	}

	expected := clearScreen + "@  \n  @\niter: 0\n"
	if got := buf.String(); got != expected {
		t.Fatalf("got %q, expected %q", got, expected)
	}
	if r.Quit() != nil {
		t.Fatal("terminal renderer should have no quit channel")
	}
}

func TestTerminalRendererWriteError(t *testing.T) {
	r := &TerminalRenderer{Out: failingWriter{}}
	err := r.Display(NewGrid(2, 2))
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Fatalf("got %v, expected a wrapped write error", err)
	}
	if r.Clear() == nil || r.Status("x") == nil {
		t.Fatal("expected write errors from Clear and Status")
	}
}

func newSimulationRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	r, err := NewScreenRenderer(screen)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, screen
}

func TestScreenRendererDisplay(t *testing.T) {
	r, screen := newSimulationRenderer(t)
	g := gridWith(3, 2, Position{0, 0}, Position{1, 2})

	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}
	if err := r.Status("ok"); err != nil {
		t.Fatal(err)
	}

	cells, width, _ := screen.GetContents()
	runeAt := func(row, col int) rune {
		runes := cells[row*width+col].Runes
		if len(runes) == 0 {
			return ' '
		}
		return runes[0]
	}

	for _, tt := range []struct {
		row, col int
		expected rune
	}{
		{0, 0, '@'},
		{0, 1, ' '},
		{1, 2, '@'},
		{1, 0, ' '},
		{2, 0, 'o'},
		{2, 1, 'k'},
	} {
		if got := runeAt(tt.row, tt.col); got != tt.expected {
			t.Errorf("screen (%d,%d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestScreenRendererQuit(t *testing.T) {
	r, screen := newSimulationRenderer(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-r.Quit():
	case <-time.After(2 * time.Second):
		t.Fatal("quit key was not observed")
	}
}
