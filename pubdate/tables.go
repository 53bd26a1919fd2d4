package pubdate

import (
	"fmt"
	"strconv"
	"strings"
)

// months maps English month abbreviations to month numbers. PubMed uses the
// three-letter forms plus the four-letter Sept variant.
var months = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3,
	"Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9,
	"Sept": 9, "Oct": 10, "Nov": 11,
	"Dec": 12,
}

// seasons maps a season name to its approximate mid-season month.
var seasons = map[string]int{
	"Spring": 4, "Summer": 7,
	"Fall": 10, "Autumn": 10, "Winter": 1,
}

// parseMonth accepts a numeric month string or a case-insensitive English
// month abbreviation.
func parseMonth(text string) (int, error) {
	if isDigits(text) {
		return strconv.Atoi(text)
	}
	if m, ok := months[capitalize(text)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown month %q", text)
}

// parseSeason accepts a case-insensitive season name.
func parseSeason(text string) (int, error) {
	if m, ok := seasons[capitalize(text)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown season %q", text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// capitalize uppercases the first letter and lowercases the rest, mirroring
// the casing the lookup tables use.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
