package pubdate

import (
	"fmt"
	"regexp"
	"strconv"
)

// Recognizer attempts to turn a Source into a Date. Match returns (nil, nil)
// when the recognizer's required fields are absent or its pattern does not
// apply, letting the resolver fall through to the next recognizer. It returns
// an error only when the shape matched but the values cannot form a valid
// calendar date; that error stops the cascade.
type Recognizer interface {
	Name() string
	Match(src Source) (*Date, error)
}

// ---------------------------------------------------------------------------
// Structured-field recognizers: Year/Month/Day/Season children.
// ---------------------------------------------------------------------------

type yearMonthDay struct{}

func (yearMonthDay) Name() string { return "year-month-day" }

func (yearMonthDay) Match(src Source) (*Date, error) {
	if src.Year == "" || src.Month == "" || src.Day == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(src.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", src.Year)
	}
	month, err := parseMonth(src.Month)
	if err != nil {
		return nil, err
	}
	day, err := strconv.Atoi(src.Day)
	if err != nil {
		return nil, fmt.Errorf("invalid day %q", src.Day)
	}
	return newDate(year, month, day)
}

type yearMonth struct{}

func (yearMonth) Name() string { return "year-month" }

func (yearMonth) Match(src Source) (*Date, error) {
	if src.Year == "" || src.Month == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(src.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", src.Year)
	}
	month, err := parseMonth(src.Month)
	if err != nil {
		return nil, err
	}
	return newDate(year, month, 1)
}

type yearSeason struct{}

func (yearSeason) Name() string { return "year-season" }

func (yearSeason) Match(src Source) (*Date, error) {
	if src.Year == "" || src.Season == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(src.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", src.Year)
	}
	month, err := parseSeason(src.Season)
	if err != nil {
		return nil, err
	}
	return newDate(year, month, 1)
}

type yearOnly struct{}

func (yearOnly) Name() string { return "year-only" }

func (yearOnly) Match(src Source) (*Date, error) {
	if src.Year == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(src.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", src.Year)
	}
	return newDate(year, 1, 1)
}

// ---------------------------------------------------------------------------
// MedlineDate free-text recognizers. Every pattern is anchored over the whole
// string, so the patterns are mutually exclusive by construction.
// ---------------------------------------------------------------------------

// medlinePattern is a MedlineDate recognizer: one anchored regexp plus a
// builder that turns its submatches into a Date.
type medlinePattern struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string) (*Date, error)
}

func (p medlinePattern) Name() string { return p.name }

func (p medlinePattern) Match(src Source) (*Date, error) {
	if src.MedlineDate == "" {
		return nil, nil
	}
	m := p.pattern.FindStringSubmatch(src.MedlineDate)
	if m == nil {
		return nil, nil
	}
	return p.build(m)
}

var (
	// 2014
	medlineYearOnly = medlinePattern{
		name:    "medline-year",
		pattern: regexp.MustCompile(`^(\d{4})$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], "", "")
		},
	}

	// 2014 Jun-Nov
	medlineMonthRange = medlinePattern{
		name:    "medline-month-range",
		pattern: regexp.MustCompile(`^(\d{4}) ([a-zA-Z]{3})-[a-zA-Z]{3}$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], m[2], "")
		},
	}

	// 2014 Jun-Nov 15
	medlineMonthRangeDay = medlinePattern{
		name:    "medline-month-range-day",
		pattern: regexp.MustCompile(`^(\d{4}) ([a-zA-Z]{3})-[a-zA-Z]{3} (\d{1,2})$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], m[2], m[3])
		},
	}

	// 2014 Jun 15-17
	medlineDayRange = medlinePattern{
		name:    "medline-day-range",
		pattern: regexp.MustCompile(`^(\d{4}) ([a-zA-Z]{3}) (\d{1,2})-\d{1,2}$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], m[2], m[3])
		},
	}

	// 1975 Dec-1976 Jan
	medlineMonthRangeCrossYear = medlinePattern{
		name:    "medline-month-range-cross-year",
		pattern: regexp.MustCompile(`^(\d{4}) ([a-zA-Z]{3})-\d{4} [a-zA-Z]{3}$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], m[2], "")
		},
	}

	// 1975-1976
	medlineYearRange = medlinePattern{
		name:    "medline-year-range",
		pattern: regexp.MustCompile(`^(\d{4})-\d{4}$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], "", "")
		},
	}

	// 1976 Aug 28-Sep 4
	medlineMonthDayRange = medlinePattern{
		name:    "medline-month-day-range",
		pattern: regexp.MustCompile(`^(\d{4}) ([a-zA-Z]{3}) (\d{1,2})-[a-zA-Z]{3} \d{1,2}$`),
		build: func(m []string) (*Date, error) {
			return yearMonthDayDate(m[1], m[2], m[3])
		},
	}

	// 1976-1977 Winter
	medlineYearRangeSeason = medlinePattern{
		name:    "medline-year-range-season",
		pattern: regexp.MustCompile(`^(\d{4})-\d{4} ([a-zA-Z]+)$`),
		build: func(m []string) (*Date, error) {
			return yearSeasonDate(m[1], m[2])
		},
	}

	// 1977-1978 Fall-Winter
	medlineYearSeasonRange = medlinePattern{
		name:    "medline-year-season-range",
		pattern: regexp.MustCompile(`^(\d{4})-\d{4} ([a-zA-Z]+)-[a-zA-Z]+$`),
		build: func(m []string) (*Date, error) {
			return yearSeasonDate(m[1], m[2])
		},
	}
)

// yearMonthDayDate builds a Date from matched year, optional month name and
// optional day texts.
func yearMonthDayDate(yearText, monthText, dayText string) (*Date, error) {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", yearText)
	}
	month := 1
	if monthText != "" {
		if month, err = parseMonth(monthText); err != nil {
			return nil, err
		}
	}
	day := 1
	if dayText != "" {
		if day, err = strconv.Atoi(dayText); err != nil {
			return nil, fmt.Errorf("invalid day %q", dayText)
		}
	}
	return newDate(year, month, day)
}

// yearSeasonDate builds a Date from matched year and season texts.
func yearSeasonDate(yearText, seasonText string) (*Date, error) {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", yearText)
	}
	month, err := parseSeason(seasonText)
	if err != nil {
		return nil, err
	}
	return newDate(year, month, 1)
}

func newDate(year, month, day int) (*Date, error) {
	d, err := New(year, month, day)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
