// Package pubmed parses PubMed/MEDLINE article XML into article records.
package pubmed

import (
	"bytes"

	"github.com/soultoolman/pubmed-mapper/format"
)

// Format implements format.Parser for PubMed XML.
type Format struct{}

func init() {
	format.Register(&Format{})
}

// Name returns the format identifier.
func (f *Format) Name() string { return "pubmed" }

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "PubMed/MEDLINE article XML (PubmedArticleSet)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string { return []string{"xml"} }

// CanParse returns true if the input looks like PubMed article XML.
func (f *Format) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("<PubmedArticle")) ||
		bytes.Contains(peek, []byte("<PubmedArticleSet"))
}
