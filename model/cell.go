package model

const (
	aliveSymbol = '@'
	deadSymbol  = ' '
)

// Position addresses a cell by row and column
type Position struct {
	Row int
	Col int
}

// Pending holds the status computed for the next generation
type Pending int8

const (
	PendingUnset Pending = iota
	PendingAlive
	PendingDead
)

// PendingOf converts a computed status into a Pending directive
func PendingOf(alive bool) Pending {
	if alive {
		return PendingAlive
	}
	return PendingDead
}

// Value returns the directive and whether one is set
func (p Pending) Value() (alive bool, ok bool) {
	switch p {
	case PendingAlive:
		return true, true
	case PendingDead:
		return false, true
	}
	return false, false
}

// Cell is a single grid element.
//
// Position is recorded at construction for debugging only; the update rule
// addresses cells by index and never reads it.
type Cell struct {
	Alive    bool
	Pending  Pending
	Position Position
}

// NewCell creates a cell with no pending directive
func NewCell(alive bool, pos Position) Cell {
	return Cell{Alive: alive, Position: pos}
}

// Char returns the glyph used to draw the cell
func (c Cell) Char() rune {
	if c.Alive {
		return aliveSymbol
	}
	return deadSymbol
}

// commit applies the pending directive, then clears it
func (c *Cell) commit() {
	if alive, ok := c.Pending.Value(); ok {
		c.Alive = alive
	}
	c.Pending = PendingUnset
}
