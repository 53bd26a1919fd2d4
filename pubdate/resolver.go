package pubdate

import "fmt"

// UnrecognizedError reports a PubDate whose fields matched no known encoding,
// or matched one structurally but did not form a valid calendar date.
type UnrecognizedError struct {
	// Source holds the raw text fields that failed to resolve.
	Source Source

	// Recognizer names the recognizer that matched the shape but rejected
	// the values; empty when no recognizer matched at all.
	Recognizer string

	// Err is the underlying date-construction error, if any.
	Err error
}

func (e *UnrecognizedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unrecognized publication date %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("unrecognized publication date %s", e.Source)
}

func (e *UnrecognizedError) Unwrap() error { return e.Err }

// recognizers is the fixed cascade ordering. The structured-field recognizers
// come before the MedlineDate patterns; the two groups are mutually exclusive
// by input shape, and the anchored MedlineDate patterns are mutually
// exclusive with each other, so the order within each group is kept for
// readability.
var recognizers = []Recognizer{
	yearMonthDay{},
	yearMonth{},
	yearSeason{},
	yearOnly{},
	medlineYearOnly,
	medlineMonthRange,
	medlineMonthRangeDay,
	medlineDayRange,
	medlineMonthRangeCrossYear,
	medlineYearRange,
	medlineMonthDayRange,
	medlineYearRangeSeason,
	medlineYearSeasonRange,
}

// Resolver applies the recognizer cascade to date sources. Recognizers are
// stateless, so a Resolver is safe for concurrent use.
type Resolver struct {
	recognizers []Recognizer
}

// NewResolver returns a resolver with the standard recognizer ordering.
func NewResolver() *Resolver {
	return &Resolver{recognizers: recognizers}
}

// Resolve tries each recognizer in order and returns the first match. It
// fails with an UnrecognizedError when no recognizer matches, or when one
// matches structurally but the values do not form a valid calendar date.
func (r *Resolver) Resolve(src Source) (Date, error) {
	for _, rec := range r.recognizers {
		d, err := rec.Match(src)
		if err != nil {
			return Date{}, &UnrecognizedError{Source: src, Recognizer: rec.Name(), Err: err}
		}
		if d != nil {
			return *d, nil
		}
	}
	return Date{}, &UnrecognizedError{Source: src}
}

var defaultResolver = NewResolver()

// Resolve applies the standard cascade; see Resolver.Resolve.
func Resolve(src Source) (Date, error) {
	return defaultResolver.Resolve(src)
}
