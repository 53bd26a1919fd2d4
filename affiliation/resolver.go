package affiliation

import "strings"

// grammars is the fixed cascade ordering. The field-rich street-address
// grammars run before the plain city/postcode grammars: a street-address
// string could otherwise satisfy a laxer pattern's greedy clause capture.
var grammars = []grammar{
	streetAddress,
	streetEmbeddedNumber,
	cityCommaPostcode,
	postcodeBeforeCity,
	cityBeforePostcode,
	cityProvince,
}

// Resolver applies the grammar cascade to affiliation text. Grammars are
// stateless, so a Resolver is safe for concurrent use.
type Resolver struct {
	grammars []grammar
}

// NewResolver returns a resolver with the standard grammar ordering.
func NewResolver() *Resolver {
	return &Resolver{grammars: grammars}
}

// Resolve trims the text and tries each grammar in order, returning the
// first match. The second return value reports whether any grammar matched;
// no match is an expected outcome, not an error.
func (r *Resolver) Resolve(text string) (*Record, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	for _, g := range r.grammars {
		if rec := g.match(text); rec != nil {
			return rec, true
		}
	}
	return nil, false
}

var defaultResolver = NewResolver()

// Resolve applies the standard cascade; see Resolver.Resolve.
func Resolve(text string) (*Record, bool) {
	return defaultResolver.Resolve(text)
}
