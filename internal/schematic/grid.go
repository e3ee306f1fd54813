package schematic

import "fmt"

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Add offsets c by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular matrix of cells. The zero Grid has no rows.
type Grid struct {
	rows  [][]Cell
	width int
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the number of columns shared by every row.
func (g *Grid) Width() int { return g.width }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < len(g.rows) && c.Col >= 0 && c.Col < g.width
}

// At returns the cell at c. It panics with an *InvariantError if c is outside the grid.
func (g *Grid) At(c Coord) Cell {
	if !g.Contains(c) {
		panic(&InvariantError{At: c, Reason: fmt.Sprintf("outside %dx%d grid", len(g.rows), g.width)})
	}
	return g.rows[c.Row][c.Col]
}
