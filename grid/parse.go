package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid in the text format described in the package doc.
// Errors from the reader are returned as-is; format problems wrap
// ErrBadToken with the offending line and column.
// Complexity: O(R×C).
func Parse(r io.Reader) (*Grid, error) {
	var (
		cells  [][]Cell
		lineNo int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]Cell, len(fields))
		for i, tok := range fields {
			cell, err := ParseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", lineNo, i+1, err)
			}
			row[i] = cell
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(cells)
}

// ParseString is Parse over a string literal.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseRows builds a grid from pre-split tokens, one slice per row.
func ParseRows(rows [][]string) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(row))
		for c, tok := range row {
			cell, err := ParseCell(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", r+1, c+1, err)
			}
			cells[r][c] = cell
		}
	}

	return New(cells)
}

// ParseCell converts one text token into a Cell.
func ParseCell(tok string) (Cell, error) {
	switch tok {
	case buildingToken, strings.ToLower(buildingToken):
		return Building, nil
	case emptyToken:
		return Empty, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w %q", ErrBadToken, tok)
	}

	return Cell(n), nil
}
