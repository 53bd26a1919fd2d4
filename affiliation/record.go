// Package affiliation decomposes author affiliation free text into
// structured postal/institutional records.
//
// Affiliation strings are a long tail of real-world free text; this package
// only recognizes a fixed set of comma-delimited grammars observed in the
// PubMed corpus. Strings outside that set resolve to absence, which callers
// treat as a soft omission rather than an error. Deliberately no lenient
// catch-all pattern exists: a greedy fallback would misparse more strings
// than it would rescue.
package affiliation

// Record is a structured affiliation. Every field is optional; an empty
// string means the matched grammar has no such component.
type Record struct {
	College    string `json:"college,omitempty"`
	University string `json:"university,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country,omitempty"`
}
