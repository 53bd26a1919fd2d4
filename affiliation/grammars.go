package affiliation

import "regexp"

// grammar is a single anchored pattern over the comma-delimited clauses of a
// whole affiliation string, plus a binder mapping its submatches to a Record.
// A grammar either matches the entire string or declines; there is no
// partial-match extraction.
type grammar struct {
	name    string
	pattern *regexp.Regexp
	bind    func(m []string) *Record
}

func (g grammar) match(text string) *Record {
	m := g.pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return g.bind(m)
}

var (
	// Institute, College, University, Street, Postcode City, Country.
	// The two leading organizational clauses are kept together as the
	// college component.
	streetAddress = grammar{
		name:    "street-address",
		pattern: regexp.MustCompile(`^([^,]+, [^,]+), ([^,]+), ([^,]+), (\d+) ([^,]+), ([^,]+?)\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				Address:    m[3],
				PostalCode: m[4],
				City:       m[5],
				Country:    m[6],
			}
		},
	}

	// College, University, StreetNumber, Street, City Postcode, Country; email.
	// The street number and street stay joined as the address component;
	// a trailing semicolon-delimited email is tolerated and dropped.
	streetEmbeddedNumber = grammar{
		name:    "street-embedded-number",
		pattern: regexp.MustCompile(`^([^,]+), ([^,]+), ([^,]+, [^,]+), ([^,]+?) (\d+), ([^,;]+?)(?:; *[^;]+?)?\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				Address:    m[3],
				City:       m[4],
				PostalCode: m[5],
				Country:    m[6],
			}
		},
	}

	// College, University, City, Province Postcode, Country.
	cityCommaPostcode = grammar{
		name:    "city-comma-postcode",
		pattern: regexp.MustCompile(`^([^,]+), ([^,]+), ([^,]+), ([^,]+?) (\d+), ([^,]+?)\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				City:       m[3],
				Province:   m[4],
				PostalCode: m[5],
				Country:    m[6],
			}
		},
	}

	// College, University, Postcode City, Country.
	postcodeBeforeCity = grammar{
		name:    "postcode-before-city",
		pattern: regexp.MustCompile(`^([^,]+), ([^,]+), (\d+) ([^,]+), ([^,]+?)\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				PostalCode: m[3],
				City:       m[4],
				Country:    m[5],
			}
		},
	}

	// College, University, City Postcode, Country.
	cityBeforePostcode = grammar{
		name:    "city-before-postcode",
		pattern: regexp.MustCompile(`^([^,]+), ([^,]+), ([^,]+?) (\d+), ([^,]+?)\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				City:       m[3],
				PostalCode: m[4],
				Country:    m[5],
			}
		},
	}

	// College, University, City, Province, Country. No postcode at all.
	cityProvince = grammar{
		name:    "city-province",
		pattern: regexp.MustCompile(`^([^,]+), ([^,]+), ([^,]+), ([^,]+), ([^,]+?)\.?$`),
		bind: func(m []string) *Record {
			return &Record{
				College:    m[1],
				University: m[2],
				City:       m[3],
				Province:   m[4],
				Country:    m[5],
			}
		},
	}
)
