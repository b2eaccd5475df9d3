package model

import (
	"crypto/md5"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/WalkerRout/rsgol/rules"
)

const historySize = 5

// Grid is a fixed-size, non-wrapping board of cells stored row-major
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	workers    int
	generation int
	history    []string // Recent hashes for cycle detection
}

// NewGrid creates a grid of dead cells, each recording its own position
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)

	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = NewCell(false, Position{Row: i, Col: j})
		}
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   cells,
		workers: 1,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns the number of completed updates
func (g *Grid) Generation() int {
	return g.generation
}

// SetWorkers sets how many goroutines share the evaluation pass. Values
// below 1 fall back to sequential evaluation.
func (g *Grid) SetWorkers(n int) {
	g.workers = max(1, n)
}

// Modify applies f to every cell in row-major order along with its flat index
func (g *Grid) Modify(f func(index int, c *Cell)) {
	index := 0
	for i := range g.cells {
		for j := range g.cells[i] {
			f(index, &g.cells[i][j])
			index++
		}
	}
	g.history = nil
}

// LoadMap replaces the grid's cells with a copy of m. It reports false and
// leaves the grid untouched when the rows of m differ in length.
func (g *Grid) LoadMap(m [][]Cell) bool {
	width := 0
	if len(m) > 0 {
		width = len(m[0])
	}
	for _, row := range m {
		if len(row) != width {
			return false
		}
	}

	g.width = width
	g.height = len(m)
	g.cells = copyCells(m)
	g.history = nil
	return true
}

// NodeRef returns the cell at pos, or nil when pos is out of bounds
func (g *Grid) NodeRef(pos Position) *Cell {
	if !g.inBounds(pos.Row, pos.Col) {
		return nil
	}
	return &g.cells[pos.Row][pos.Col]
}

// SetNode replaces the cell at pos. It reports false when pos is out of bounds.
func (g *Grid) SetNode(pos Position, c Cell) bool {
	ref := g.NodeRef(pos)
	if ref == nil {
		return false
	}
	*ref = c
	return true
}

// Alive returns the status of a cell; out of bounds cells read as dead
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col].Alive
}

// Cells returns a copy of the current cell matrix
func (g *Grid) Cells() [][]Cell {
	return copyCells(g.cells)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := *g
	clone.cells = copyCells(g.cells)
	clone.history = append([]string(nil), g.history...)
	return &clone
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col),
// skipping positions that fall outside the grid
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c].Alive {
				count++
			}
		}
	}

	return count
}

// Update advances the grid by one generation. Every cell's next status is
// computed from the current generation before any cell is changed.
func (g *Grid) Update() {
	g.evaluate()
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j].commit()
		}
	}
	g.generation++
}

// StepIterations applies Update n times and returns a copy of the result
func (g *Grid) StepIterations(n int) [][]Cell {
	for range n {
		g.Update()
	}
	return g.Cells()
}

// evaluate fills in Pending for every cell without touching Alive
func (g *Grid) evaluate() {
	if g.workers <= 1 || g.height < 2 {
		g.evaluateRows(0, g.height)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.evaluateRows(startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait()
}

func (g *Grid) evaluateRows(startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		for j := 0; j < g.width; j++ {
			cell := &g.cells[i][j]
			if alive, ok := rules.ApplyConwayRules(g.CountNeighbors(i, j)); ok {
				cell.Pending = PendingOf(alive)
			} else {
				cell.Pending = PendingUnset
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the alive bits in row-major order
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].Alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states, which covers still lifes and period two or three oscillators
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for _, h := range g.history[len(g.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}

func copyCells(m [][]Cell) [][]Cell {
	out := make([][]Cell, len(m))
	for i := range m {
		out[i] = make([]Cell, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}
