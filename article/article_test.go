package article

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/soultoolman/pubmed-mapper/affiliation"
	"github.com/soultoolman/pubmed-mapper/pubdate"
)

func TestArticleJSONFieldNames(t *testing.T) {
	a := Article{
		PMID:         "29325141",
		IDs:          []ID{{Type: "doi", Value: "10.1093/nar/gkx1311"}},
		Title:        "A title",
		Abstract:     "<p>Text</p>",
		Keywords:     []string{"kw"},
		MeshHeadings: []string{"Acute Disease"},
		Authors: []Author{{
			LastName:    "Garganeeva",
			Forename:    "A A",
			Initials:    "AA",
			Affiliation: "Department of Pharmacy, University of Bonn, 53113 Bonn, Germany.",
			AffiliationInfo: &affiliation.Record{
				College:    "Department of Pharmacy",
				University: "University of Bonn",
				City:       "Bonn",
				PostalCode: "53113",
				Country:    "Germany",
			},
		}},
		Journal:    Journal{ISSN: "1362-4962", ISSNType: "Electronic", Title: "NAR", Abbr: "NAR"},
		Volume:     "46",
		Issue:      "3",
		References: []Reference{{Citation: "Metabolism. 2009 Jan;58(1):102-8", IDs: []ID{{Type: "pubmed", Value: "19059537"}}}},
		Pubdate:    pubdate.Date{Year: 2018, Month: 2, Day: 16},
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`"pmid":"29325141"`,
		`"id_type":"doi"`,
		`"id_value":"10.1093/nar/gkx1311"`,
		`"mesh_headings":["Acute Disease"]`,
		`"last_name":"Garganeeva"`,
		`"forename":"A A"`,
		`"initials":"AA"`,
		`"postal_code":"53113"`,
		`"issn_type":"Electronic"`,
		`"citation":"Metabolism. 2009 Jan;58(1):102-8"`,
		`"pubdate":"2018-02-16"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled article missing %s:\n%s", want, out)
		}
	}
}

func TestAuthorOmitsAbsentAffiliationInfo(t *testing.T) {
	data, err := json.Marshal(Author{LastName: "Tukish"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "affiliation_info") {
		t.Errorf("absent affiliation_info serialized: %s", data)
	}
}
