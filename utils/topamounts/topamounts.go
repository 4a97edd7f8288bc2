// Package topamounts recovers the largest debit and credit amounts from a
// table extracted from a scanned statement.
//
// The table is read in two passes. Columns labelled debit/credit (or dr/cr)
// are located first and their date-gated cells collected. A side whose
// column was never located falls back to a cell-by-cell keyword scan.
package topamounts

import (
	"fmt"
	"math"
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

// SignPolicy controls how the sign of a parsed amount reaches
// AmountEntry.Value.
type SignPolicy string

const (
	// SignPolicyLegacy stores the magnitude for column amounts and the
	// number as written for fallback amounts.
	SignPolicyLegacy SignPolicy = "legacy"
	// SignPolicyMagnitude stores the magnitude on both paths.
	SignPolicyMagnitude SignPolicy = "magnitude"
)

// ParseSignPolicy maps a configuration string onto a SignPolicy. An empty
// string selects SignPolicyLegacy.
func ParseSignPolicy(s string) (SignPolicy, error) {
	switch SignPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SignPolicyLegacy:
		return SignPolicyLegacy, nil
	case SignPolicyMagnitude:
		return SignPolicyMagnitude, nil
	}
	return "", fmt.Errorf("unknown sign policy %q", s)
}

// Options tunes Rank.
type Options struct {
	SignPolicy SignPolicy
}

// Rank runs the whole pipeline over table. It never fails: a table with no
// recognisable amounts yields an empty result.
func Rank(table dto.Table, opts Options) dto.RankedResult {
	policy := opts.SignPolicy
	if policy == "" {
		policy = SignPolicyLegacy
	}

	classification := Classify(table)

	debits := collectColumn(table, classification.DebitColumn)
	credits := collectColumn(table, classification.CreditColumn)
	debitSource := sourceOf(debits)
	creditSource := sourceOf(credits)

	// Fallback is gated on the column never being found, not on it being
	// empty.
	if !classification.DebitColumn.Valid && len(debits) == 0 {
		debits = Fallback(table, SideDebit, policy)
		debitSource = sourceOf(debits)
	}
	if !classification.CreditColumn.Valid && len(credits) == 0 {
		credits = Fallback(table, SideCredit, policy)
		creditSource = sourceOf(credits)
	}

	return dto.RankedResult{
		Debits:         Top(debits, TopN),
		Credits:        Top(credits, TopN),
		Classification: classification,
		DebitSource:    debitSource,
		CreditSource:   creditSource,
	}
}

// collectColumn parses every date-gated cell of col.
func collectColumn(table dto.Table, col dto.ColumnIndex) []dto.AmountEntry {
	if !col.Valid {
		return nil
	}

	var entries []dto.AmountEntry
	for r, row := range table {
		if !IsDateRow(row) {
			continue
		}
		cell := row.At(col.Index)
		if !cell.Present() {
			continue
		}
		text := cell.Text()
		for _, a := range ParseAmounts(text) {
			entries = append(entries, dto.AmountEntry{
				Value:    math.Abs(a.Signed),
				Signed:   a.Signed,
				SignHint: signHint(a, text),
				RowIndex: r,
				ColIndex: col.Index,
				RawText:  text,
				Source:   dto.SourcePrimary,
			})
		}
	}
	return entries
}

func sourceOf(entries []dto.AmountEntry) dto.EntrySource {
	if len(entries) == 0 {
		return dto.SourceNone
	}
	return entries[0].Source
}

// signHint reads the direction an amount's own formatting points to.
func signHint(a Amount, text string) dto.SignHint {
	if a.Signed < 0 || a.Parenthesized {
		return dto.SignDebit
	}
	if cellCreditRegex.MatchString(strings.ToLower(text)) {
		return dto.SignCredit
	}
	return dto.SignUnknown
}
