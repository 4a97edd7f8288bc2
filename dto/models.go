package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ColumnIndex identifies a column of a Table. The zero value means the column
// has not been located.
type ColumnIndex struct {
	Index int
	Valid bool
}

// Column returns a located column index.
func Column(i int) ColumnIndex {
	return ColumnIndex{Index: i, Valid: true}
}

func (c ColumnIndex) String() string {
	if !c.Valid {
		return "none"
	}
	return strconv.Itoa(c.Index)
}

func (c ColumnIndex) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.Index)), nil
}

func (c *ColumnIndex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ColumnIndex{}
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("column index: %w", err)
	}
	*c = Column(i)
	return nil
}

// ClassificationResult holds the debit and credit columns found by header
// keyword.
type ClassificationResult struct {
	DebitColumn  ColumnIndex `json:"debit_column"`
	CreditColumn ColumnIndex `json:"credit_column"`
}

// SignHint is the direction an amount's own formatting suggests.
type SignHint string

const (
	SignDebit   SignHint = "debit"
	SignCredit  SignHint = "credit"
	SignUnknown SignHint = "unknown"
)

// EntrySource records which collector produced an entry.
type EntrySource string

const (
	SourceNone     EntrySource = "none"
	SourcePrimary  EntrySource = "primary"
	SourceFallback EntrySource = "fallback"
)

// AmountEntry is one parsed monetary observation tied to its source cell.
type AmountEntry struct {
	Value    float64     `json:"value"`
	Signed   float64     `json:"signed"`
	SignHint SignHint    `json:"sign_hint"`
	RowIndex int         `json:"row_index"`
	ColIndex int         `json:"col_index"`
	RawText  string      `json:"raw_text"`
	Source   EntrySource `json:"source"`
}

// RankedResult is the top debit and credit entries of a table, each sorted by
// descending value.
type RankedResult struct {
	Debits         []AmountEntry        `json:"debits"`
	Credits        []AmountEntry        `json:"credits"`
	Classification ClassificationResult `json:"classification"`
	DebitSource    EntrySource          `json:"debit_source"`
	CreditSource   EntrySource          `json:"credit_source"`
}

// Empty reports whether neither side produced an entry.
func (r RankedResult) Empty() bool {
	return len(r.Debits) == 0 && len(r.Credits) == 0
}
