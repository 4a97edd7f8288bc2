package topamounts

import (
	"math"
	"regexp"
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

// Side is one half of the ranked result.
type Side int

const (
	SideNone Side = iota
	SideDebit
	SideCredit
)

func (s Side) String() string {
	switch s {
	case SideDebit:
		return "debit"
	case SideCredit:
		return "credit"
	default:
		return "none"
	}
}

var (
	cellCreditRegex = regexp.MustCompile(`\bcr\b|credit`)
	cellDebitRegex  = regexp.MustCompile(`\bdr\b|debit|withdrawal`)
	minusDigitRegex = regexp.MustCompile(`-\d`)
	rowCreditRegex  = regexp.MustCompile(`credit|\bcr\b`)
	rowDebitRegex   = regexp.MustCompile(`debit|\bdr\b|withdrawal`)
)

// classifyCell decides the side of an amount found in text, using the cell's
// own wording first and the whole row's wording second.
func classifyCell(text, rowText string) Side {
	lc := strings.ToLower(text)
	switch {
	case cellCreditRegex.MatchString(lc):
		return SideCredit
	case cellDebitRegex.MatchString(lc) || minusDigitRegex.MatchString(text):
		return SideDebit
	case rowCreditRegex.MatchString(rowText):
		return SideCredit
	case rowDebitRegex.MatchString(rowText):
		return SideDebit
	}
	return SideNone
}

func rowText(row dto.Row) string {
	parts := make([]string, len(row))
	for i, cell := range row {
		parts[i] = cell.Text()
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Fallback scans every date-gated row cell by cell for amounts of the given
// side, classifying each by keyword or sign. Column 0 holds the date that
// opened the gate and is not scanned for amounts. Unclassified amounts are
// dropped.
func Fallback(table dto.Table, side Side, policy SignPolicy) []dto.AmountEntry {
	var entries []dto.AmountEntry

	for r, row := range table {
		if !IsDateRow(row) {
			continue
		}
		rt := rowText(row)
		for c := 1; c < len(row); c++ {
			text := row[c].Text()
			amounts := ParseLooseAmounts(text)
			if len(amounts) == 0 {
				continue
			}
			if classifyCell(text, rt) != side {
				continue
			}
			for _, a := range amounts {
				value := a.Signed
				if policy == SignPolicyMagnitude {
					value = math.Abs(value)
				}
				entries = append(entries, dto.AmountEntry{
					Value:    value,
					Signed:   a.Signed,
					SignHint: signHint(a, text),
					RowIndex: r,
					ColIndex: c,
					RawText:  text,
					Source:   dto.SourceFallback,
				})
			}
		}
	}

	return entries
}
