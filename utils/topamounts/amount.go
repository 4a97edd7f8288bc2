package topamounts

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountTokenRegex = regexp.MustCompile(`-?\(?\d{1,3}[,\d]*(?:\.\d+)?\)?`)
	looseTokenRegex  = regexp.MustCompile(`-?\d{1,3}[\d,]*(?:\.\d+)?`)
	amountJunkRegex  = regexp.MustCompile(`[^0-9.\-,]`)
)

// Amount is a number recovered from one token of a cell.
type Amount struct {
	Signed        float64
	Parenthesized bool
}

// ParseAmounts extracts every accounting-formatted amount in text. Currency
// symbols and thousands separators are ignored; a token wrapped in
// parentheses is read as negative. Tokens that do not parse are dropped.
func ParseAmounts(text string) []Amount {
	var amounts []Amount
	for _, token := range amountTokenRegex.FindAllString(text, -1) {
		parenthesized := strings.HasPrefix(strings.TrimPrefix(token, "-"), "(") && strings.HasSuffix(token, ")")

		s := strings.NewReplacer("(", "", ")", "").Replace(token)
		s = amountJunkRegex.ReplaceAllString(s, "")
		s = strings.ReplaceAll(s, ",", "")

		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		if parenthesized && n > 0 {
			n = -n
		}
		amounts = append(amounts, Amount{Signed: n, Parenthesized: parenthesized})
	}
	return amounts
}

// ParseLooseAmounts extracts plain numbers from text, keeping a leading minus
// sign. Parentheses carry no meaning here.
func ParseLooseAmounts(text string) []Amount {
	var amounts []Amount
	for _, token := range looseTokenRegex.FindAllString(text, -1) {
		n, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, Amount{Signed: n})
	}
	return amounts
}
