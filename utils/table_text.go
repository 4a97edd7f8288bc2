package utils

import (
	"regexp"
	"strings"
)

var (
	// cellGapRegex separates columns in OCR or text-layer output: a tab or a
	// run of two or more spaces.
	cellGapRegex = regexp.MustCompile(`\t+|[ \x{00A0}]{2,}`)

	ocrSemicolonRegex = regexp.MustCompile(`(\d);(\d)`)
	ocrColonRegex     = regexp.MustCompile(`(\d):(\d{2})\b`)
)

// ParseTableText splits recognised text into a ragged grid, one row per
// non-blank line.
func ParseTableText(text string) [][]string {
	var rows [][]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, SplitCells(line))
	}

	return rows
}

// SplitCells splits a single line into trimmed cells.
func SplitCells(line string) []string {
	parts := cellGapRegex.Split(strings.TrimSpace(line), -1)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, SanitizeOCRAmount(strings.TrimSpace(p)))
	}
	return cells
}

// SanitizeOCRAmount fixes Tesseract misreading a decimal point inside a number
// as a semicolon or colon, e.g. "1,234;56" or "1,234:56".
func SanitizeOCRAmount(s string) string {
	s = ocrSemicolonRegex.ReplaceAllString(s, "$1.$2")
	if strings.Contains(s, ",") {
		s = ocrColonRegex.ReplaceAllString(s, "$1.$2")
	}
	return s
}
