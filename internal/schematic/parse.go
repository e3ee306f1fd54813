package schematic

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse builds a Grid from schematic text. Lines end with "\n" or "\r\n"; a single
// trailing blank line is ignored. Each maximal run of decimal digits becomes one
// number of any width whose cells share a fresh NumberID, '.' becomes an empty cell and any other
// character becomes a symbol. Parsing is all-or-nothing.
func Parse(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	var ids idSource
	rows := make([][]Cell, 0, len(lines))
	width := -1
	for i, line := range lines {
		row, err := parseLine(line, i+1, &ids)
		if err != nil {
			return nil, err
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &ParseError{
				Line:   i + 1,
				Err:    ErrIrregularGrid,
				Detail: fmt.Sprintf("row has %d cells, want %d", len(row), width),
			}
		}
		rows = append(rows, row)
	}
	if width == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	return &Grid{rows: rows, width: width}, nil
}

// MustParse is like Parse but panics on error. It is meant for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// splitLines splits on "\n", strips the '\r' of "\r\n" terminators and drops the
// empty string that follows a final terminator.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseLine(line string, lineNo int, ids *idSource) ([]Cell, error) {
	runes := []rune(line)
	row := make([]Cell, 0, len(runes))
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case isDigit(r):
			j := i + 1
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}
			value, ok := new(big.Int).SetString(string(runes[i:j]), 10)
			if !ok {
				panic(&InvariantError{At: Coord{Row: lineNo - 1, Col: i}, Reason: "digit run is not a decimal"})
			}
			id := ids.next()
			for ; i < j; i++ {
				row = append(row, NumberCell(value, id))
			}
		case r == '.':
			row = append(row, EmptyCell())
			i++
		case r == '\r' || r == '\n':
			return nil, &ParseError{Line: lineNo, Col: i + 1, Err: ErrInvalidCharacter, Detail: fmt.Sprintf("%q", r)}
		default:
			row = append(row, SymbolCell(r))
			i++
		}
	}
	return row, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// idSource mints NumberIDs for a single parse. Zero is never issued.
type idSource struct {
	last NumberID
}

func (s *idSource) next() NumberID {
	s.last++
	return s.last
}
