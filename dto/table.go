package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single extracted table value. A cell is either present (possibly
// with empty text) or absent.
type Cell struct {
	text    string
	present bool
}

// TextCell returns a present cell holding s.
func TextCell(s string) Cell {
	return Cell{text: s, present: true}
}

// NumberCell returns a present cell holding the literal text of a number.
// Exponent literals are written out in plain decimal notation.
func NumberCell(n json.Number) Cell {
	text := n.String()
	if strings.ContainsAny(text, "eE") {
		if f, err := n.Float64(); err == nil {
			text = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return Cell{text: text, present: true}
}

// AbsentCell returns a cell with no value.
func AbsentCell() Cell {
	return Cell{}
}

// Text returns the cell text, or "" when the cell is absent.
func (c Cell) Text() string {
	return c.text
}

// Present reports whether the cell carries a value.
func (c Cell) Present() bool {
	return c.present
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return json.Marshal(c.text)
}

// Row is an ordered sequence of cells. Rows of one table may differ in length.
type Row []Cell

// At returns the cell at column i, or an absent cell when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return AbsentCell()
	}
	return r[i]
}

// Table is the raw grid handed over by the table extractor. No header row is
// assumed.
type Table []Row

// TableFromStrings builds a table from a string grid such as a CSV or a
// spreadsheet sheet.
func TableFromStrings(rows [][]string) Table {
	table := make(Table, len(rows))
	for i, raw := range rows {
		row := make(Row, len(raw))
		for j, s := range raw {
			row[j] = TextCell(s)
		}
		table[i] = row
	}
	return table
}

// Strings returns the table as a string grid, absent cells rendered as "".
func (t Table) Strings() [][]string {
	out := make([][]string, len(t))
	for i, row := range t {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.Text()
		}
	}
	return out
}

// UnmarshalJSON accepts an array of rows, each an array of strings, numbers,
// booleans or nulls. A null row is an empty row.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if raw == nil {
		*t = nil
		return nil
	}

	rows, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: table must be an array of rows", ErrMalformedTable)
	}

	table := make(Table, 0, len(rows))
	for r, rawRow := range rows {
		if rawRow == nil {
			table = append(table, Row{})
			continue
		}
		cells, ok := rawRow.([]any)
		if !ok {
			return fmt.Errorf("%w: row %d is not an array", ErrMalformedTable, r)
		}
		row := make(Row, len(cells))
		for c, v := range cells {
			cell, err := cellFromJSON(v)
			if err != nil {
				return fmt.Errorf("%w: row %d, column %d: %v", ErrMalformedTable, r, c, err)
			}
			row[c] = cell
		}
		table = append(table, row)
	}

	*t = table
	return nil
}

func cellFromJSON(v any) (Cell, error) {
	switch val := v.(type) {
	case nil:
		return AbsentCell(), nil
	case string:
		return TextCell(val), nil
	case json.Number:
		return NumberCell(val), nil
	case bool:
		if val {
			return TextCell("true"), nil
		}
		return TextCell("false"), nil
	default:
		return Cell{}, fmt.Errorf("unsupported cell value of type %T", v)
	}
}
