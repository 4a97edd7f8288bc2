package dto

import "errors"

// Custom errors
var (
	ErrMalformedTable  = errors.New("table must be an array of rows of cell values")
	ErrMissingTable    = errors.New("table is required")
	ErrNothingToExport = errors.New("no debit or credit entries found to export")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// NoEntriesMessage is reported when a table yields no debit or credit entry.
const NoEntriesMessage = "no debit or credit entries found"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// TopAmountsResponse is the ranked result plus a summary for display.
type TopAmountsResponse struct {
	RequestID      string               `json:"request_id"`
	Found          bool                 `json:"found"`
	Message        string               `json:"message,omitempty"`
	Debits         []AmountEntry        `json:"debits"`
	Credits        []AmountEntry        `json:"credits"`
	Classification ClassificationResult `json:"classification"`
	DebitSource    EntrySource          `json:"debit_source"`
	CreditSource   EntrySource          `json:"credit_source"`
	DebitTotal     string               `json:"debit_total"`
	CreditTotal    string               `json:"credit_total"`
	TableRows      int                  `json:"table_rows,omitempty"`
	ProcessedAt    string               `json:"processed_at"`
}
