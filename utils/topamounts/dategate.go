package topamounts

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

// dateRegex matches d/m/y, y/m/d (separators - / .) and "Jan 5, 2024" forms.
// Calendar validity is not checked.
var dateRegex = regexp.MustCompile(`(?i)(\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}\b)|(\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b)|(\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b)`)

// IsDateCell reports whether the cell text looks like a transaction date.
func IsDateCell(cell dto.Cell) bool {
	if !cell.Present() {
		return false
	}
	s := strings.TrimSpace(cell.Text())
	if s == "" {
		return false
	}
	return dateRegex.MatchString(s)
}

// IsDateRow reports whether the leftmost cell of row is a date. Only such rows
// contribute amounts.
func IsDateRow(row dto.Row) bool {
	return IsDateCell(row.At(0))
}
