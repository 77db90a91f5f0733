package common

import (
	"strings"
)

// ConversionConfig stores configuration options for reading an input workbook.
type ConversionConfig struct {
	Delimiter           rune   // Delimiter used for CSV parsing, detected when zero
	TableName           string // Name of the table for single-table inputs
	FormattedCellValues bool   // Read cell text as displayed after number formatting
}

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that produces the most fields.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) rune {
	if line == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	maxCount := -1
	winner := ','

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}
