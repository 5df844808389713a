package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var kindRunes = [...]rune{
	Empty:   '.',
	Wall:    '#',
	Start:   'S',
	End:     'E',
	Visited: 'o',
	Path:    '*',
}

// Rune returns the text-form rune for k.
func (k Kind) Rune() rune {
	if int(k) < len(kindRunes) {
		return kindRunes[k]
	}
	return '?'
}

// ParseKind maps a text-form rune back to its Kind.
func ParseKind(r rune) (Kind, error) {
	for k, kr := range kindRunes {
		if kr == r {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadCell, r)
}

// Parse reads a grid in text form: one line per row, one rune per cell
// ('#' wall, '.' empty, 'S' start, 'E' end, 'o' visited, '*' path).
// Blank lines are skipped. Search state of the result is reset.
//
// Returns ErrEmptyGrid for input without rows, ErrNonRectangular for
// ragged rows and ErrBadCell for unknown runes.
func Parse(r io.Reader) (*Grid, error) {
	var lines [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(lines[0])
	for i, l := range lines {
		if len(l) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(l), cols)
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for row, l := range lines {
		for col, ch := range l {
			k, err := ParseKind(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, At(row, col))
			}
			g.cells[g.index(At(row, col))].Kind = k
		}
	}
	return g, nil
}

// MustParse is Parse over a string that panics on error. Intended for
// fixtures and examples.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}

// Format writes g in the text form accepted by Parse.
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if _, err := bw.WriteRune(g.cells[g.index(At(row, col))].Kind.Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the text form of g.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Format(&sb)
	return sb.String()
}
