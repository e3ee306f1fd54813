package schematic

import "math/big"

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSymbol
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSymbol:
		return "symbol"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// NumberID identifies one logical number within a grid. Every cell spanned by the
// number carries the same ID. IDs are only compared for equality.
type NumberID uint32

// Cell is one position of the grid. Symbol is set for KindSymbol cells; Value and ID
// are set for KindNumber cells. All cells of a number share one Value, which must
// not be modified.
type Cell struct {
	Kind   Kind
	Symbol rune
	Value  *big.Int
	ID     NumberID
}

// EmptyCell returns a '.' placeholder cell.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// SymbolCell returns a cell holding the symbol r.
func SymbolCell(r rune) Cell { return Cell{Kind: KindSymbol, Symbol: r} }

// NumberCell returns one cell of the number identified by id.
func NumberCell(value *big.Int, id NumberID) Cell {
	return Cell{Kind: KindNumber, Value: value, ID: id}
}

func (c Cell) IsEmpty() bool  { return c.Kind == KindEmpty }
func (c Cell) IsSymbol() bool { return c.Kind == KindSymbol }
func (c Cell) IsNumber() bool { return c.Kind == KindNumber }
