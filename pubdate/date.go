// Package pubdate resolves PubMed publication dates.
//
// A PubDate element encodes its date in one of more than a dozen loosely
// structured forms: separate Year/Month/Day children, Year plus a Season,
// or a free-text MedlineDate string covering month ranges, day ranges,
// year ranges and season ranges. Resolution runs a fixed, ordered cascade
// of recognizers; the first one that confidently parses the input wins.
package pubdate

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a resolved calendar date. Month and day default to 1 when the
// source only carries coarser precision; a date without a year never exists.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New validates year, month and day and returns the resulting Date.
// Validation round-trips through time.Date, so impossible combinations
// like February 30 are rejected along with out-of-range months and days.
func New(year, month, day int) (Date, error) {
	if year <= 0 {
		return Date{}, fmt.Errorf("invalid year %d", year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON emits the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
