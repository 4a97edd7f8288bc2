// Package report renders ranked debit/credit entries into downloadable
// artifacts.
package report

import (
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/shopspring/decimal"
)

const (
	CSVFilename   = "top5_debit_credit.csv"
	XLSXFilename  = "top5_debit_credit.xlsx"
	TableFilename = "extracted_tables.csv"

	header = "debit,credit"
)

// Pair is one aligned report row. A side with fewer entries leaves its field
// empty.
type Pair struct {
	Debit  string
	Credit string
}

// Pairs aligns the ranked debits and credits by rank, using each entry's raw
// cell text. It returns dto.ErrNothingToExport when both sides are empty.
func Pairs(ranked dto.RankedResult) ([]Pair, error) {
	if ranked.Empty() {
		return nil, dto.ErrNothingToExport
	}

	n := max(len(ranked.Debits), len(ranked.Credits))
	pairs := make([]Pair, n)
	for i := range pairs {
		if i < len(ranked.Debits) {
			pairs[i].Debit = ranked.Debits[i].RawText
		}
		if i < len(ranked.Credits) {
			pairs[i].Credit = ranked.Credits[i].RawText
		}
	}
	return pairs, nil
}

// Lines returns the report as text lines, header first.
func Lines(ranked dto.RankedResult) ([]string, error) {
	pairs, err := Pairs(ranked)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(pairs)+1)
	lines = append(lines, header)
	for _, p := range pairs {
		lines = append(lines, quote(p.Debit)+","+quote(p.Credit))
	}
	return lines, nil
}

// CSV returns the report file body. Lines are separated by "\n" with no
// trailing newline.
func CSV(ranked dto.RankedResult) ([]byte, error) {
	lines, err := Lines(ranked)
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// TableCSV renders a whole extracted table with every cell quoted.
func TableCSV(table dto.Table) []byte {
	lines := make([]string, len(table))
	for i, row := range table {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = quote(cell.Text())
		}
		lines[i] = strings.Join(cells, ",")
	}
	return []byte(strings.Join(lines, "\n"))
}

// Totals sums the ranked values of each side.
func Totals(ranked dto.RankedResult) (debit, credit decimal.Decimal) {
	return sum(ranked.Debits), sum(ranked.Credits)
}

func sum(entries []dto.AmountEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Value))
	}
	return total
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
