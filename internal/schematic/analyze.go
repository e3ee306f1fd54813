package schematic

import (
	"fmt"
	"math/big"
)

// GearSymbol marks a potential gear.
const GearSymbol = '*'

// neighborOffsets enumerates the 8-connected neighbourhood in row-major order.
var neighborOffsets = [...]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// PartNumber is one logical number as seen from a cell it spans.
type PartNumber struct {
	Value *big.Int
	ID    NumberID
	At    Coord
}

// Part is a symbol together with the distinct numbers around it.
type Part struct {
	At      Coord
	Symbol  rune
	Numbers []PartNumber
}

// Gear is a '*' symbol adjacent to exactly two distinct numbers.
type Gear struct {
	At      Coord
	Numbers [2]PartNumber
}

// Ratio returns the product of the gear's two numbers.
func (g Gear) Ratio() *big.Int {
	return new(big.Int).Mul(g.Numbers[0].Value, g.Numbers[1].Value)
}

// AnySymbol matches every symbol.
func AnySymbol(rune) bool { return true }

// IsGear matches the gear symbol.
func IsGear(r rune) bool { return r == GearSymbol }

// Neighbors returns the in-bounds positions around c in a fixed row-major order.
// Corners have 3 neighbours, edges 5 and interior cells 8.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if n := c.Add(off); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// SymbolPositions scans the grid row by row and returns the positions of symbols
// accepted by match.
func (g *Grid) SymbolPositions(match func(rune) bool) []Coord {
	var out []Coord
	for r, row := range g.rows {
		for c, cell := range row {
			if cell.IsSymbol() && match(cell.Symbol) {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Number resolves the number cell at c. Resolving any other kind of cell is a
// programming error and panics with an *InvariantError.
func (g *Grid) Number(c Coord) PartNumber {
	cell := g.At(c)
	if !cell.IsNumber() {
		panic(&InvariantError{At: c, Reason: fmt.Sprintf("cell is %s, not a number", cell.Kind)})
	}
	return PartNumber{Value: cell.Value, ID: cell.ID, At: c}
}

// NeighboringNumbers returns the distinct numbers around c, in the order their first
// cell is met. A number touching c through several of its cells appears once.
func (g *Grid) NeighboringNumbers(c Coord) []PartNumber {
	var nums []PartNumber
	seen := make(map[NumberID]struct{}, 2)
	for _, n := range g.Neighbors(c) {
		if !g.At(n).IsNumber() {
			continue
		}
		pn := g.Number(n)
		if _, ok := seen[pn.ID]; ok {
			continue
		}
		seen[pn.ID] = struct{}{}
		nums = append(nums, pn)
	}
	return nums
}

// Parts returns every symbol with its neighbouring numbers, in row-major order.
func (g *Grid) Parts() []Part {
	positions := g.SymbolPositions(AnySymbol)
	parts := make([]Part, 0, len(positions))
	for _, at := range positions {
		parts = append(parts, Part{
			At:      at,
			Symbol:  g.At(at).Symbol,
			Numbers: g.NeighboringNumbers(at),
		})
	}
	return parts
}

// PartNumberSum sums, for every symbol, the distinct numbers adjacent to it. Numbers
// are deduplicated per symbol only: a number touching two symbols counts twice.
func (g *Grid) PartNumberSum() *big.Int {
	sum := new(big.Int)
	for _, at := range g.SymbolPositions(AnySymbol) {
		for _, n := range g.NeighboringNumbers(at) {
			sum.Add(sum, n.Value)
		}
	}
	return sum
}

// Gears returns the '*' symbols that touch exactly two distinct numbers.
func (g *Grid) Gears() []Gear {
	var gears []Gear
	for _, at := range g.SymbolPositions(IsGear) {
		nums := g.NeighboringNumbers(at)
		if len(nums) != 2 {
			continue
		}
		gears = append(gears, Gear{At: at, Numbers: [2]PartNumber{nums[0], nums[1]}})
	}
	return gears
}

// GearProductSum sums the ratios of all gears.
func (g *Grid) GearProductSum() *big.Int {
	sum := new(big.Int)
	for _, gear := range g.Gears() {
		sum.Add(sum, gear.Ratio())
	}
	return sum
}
