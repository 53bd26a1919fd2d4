// Package article defines the canonical record model PubMed XML maps into.
package article

import (
	"github.com/soultoolman/pubmed-mapper/affiliation"
	"github.com/soultoolman/pubmed-mapper/pubdate"
)

// ID is one entry of an article's identifier list (pubmed, doi, pmc, pii...).
type ID struct {
	Type  string `json:"id_type"`
	Value string `json:"id_value"`
}

// Journal describes the journal an article appeared in.
type Journal struct {
	ISSN     string `json:"issn,omitempty"`
	ISSNType string `json:"issn_type,omitempty"`
	Title    string `json:"title"`
	Abbr     string `json:"abbr"`
}

// Author is one entry of an article's author list. Affiliation keeps the raw
// free text; AffiliationInfo carries the structured decomposition when one of
// the affiliation grammars matched, and is absent otherwise.
type Author struct {
	LastName        string              `json:"last_name,omitempty"`
	Forename        string              `json:"forename,omitempty"`
	Initials        string              `json:"initials,omitempty"`
	Affiliation     string              `json:"affiliation,omitempty"`
	AffiliationInfo *affiliation.Record `json:"affiliation_info,omitempty"`
}

// Reference is a cited work: its free-text citation plus any identifiers.
type Reference struct {
	Citation string `json:"citation"`
	IDs      []ID   `json:"ids"`
}

// Article is a fully mapped PubMed record. The JSON field names define the
// output line format.
type Article struct {
	PMID         string       `json:"pmid"`
	IDs          []ID         `json:"ids"`
	Title        string       `json:"title"`
	Abstract     string       `json:"abstract"`
	Keywords     []string     `json:"keywords"`
	MeshHeadings []string     `json:"mesh_headings"`
	Authors      []Author     `json:"authors"`
	Journal      Journal      `json:"journal"`
	Volume       string       `json:"volume,omitempty"`
	Issue        string       `json:"issue,omitempty"`
	References   []Reference  `json:"references"`
	Pubdate      pubdate.Date `json:"pubdate"`
}
