package topamounts

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/statement-top-amounts/dto"
)

var (
	debitHeaderRegex  = regexp.MustCompile(`\bdebit\b|\bdr\b`)
	creditHeaderRegex = regexp.MustCompile(`\bcredit\b|\bcr\b`)
)

// Classify locates the debit and credit columns by header keyword, scanning
// rows top to bottom and cells left to right. The first match for a side is
// kept; scanning stops once both sides are located. Rows that open with a
// date are transactions, so their narration never names a column.
func Classify(table dto.Table) dto.ClassificationResult {
	var result dto.ClassificationResult

	for _, row := range table {
		if IsDateRow(row) {
			continue
		}
		for c, cell := range row {
			text := strings.ToLower(cell.Text())
			if !result.DebitColumn.Valid && debitHeaderRegex.MatchString(text) {
				result.DebitColumn = dto.Column(c)
			}
			if !result.CreditColumn.Valid && creditHeaderRegex.MatchString(text) {
				result.CreditColumn = dto.Column(c)
			}
			if result.DebitColumn.Valid && result.CreditColumn.Valid {
				return result
			}
		}
	}

	return result
}
