package pubdate

import "strings"

// Source is the bag of date-bearing text fields extracted from a PubDate
// element. Real records populate at most one representation (structured
// fields or MedlineDate), but the resolver does not assume which.
type Source struct {
	Year        string
	Month       string
	Day         string
	Season      string
	MedlineDate string
}

// String renders the populated fields, for error messages.
func (s Source) String() string {
	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("Year", s.Year)
	add("Month", s.Month)
	add("Day", s.Day)
	add("Season", s.Season)
	add("MedlineDate", s.MedlineDate)
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}
