package pubmed

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/soultoolman/pubmed-mapper/affiliation"
	"github.com/soultoolman/pubmed-mapper/article"
	"github.com/soultoolman/pubmed-mapper/format"
	"github.com/soultoolman/pubmed-mapper/pubdate"
)

// ---------------------------------------------------------------------------
// XML shapes. Title and abstract fields keep their inner XML so embedded
// markup (<i>, <sub>, MathML) survives into the output.
// ---------------------------------------------------------------------------

// XMLArticleSet represents a <PubmedArticleSet> document.
type XMLArticleSet struct {
	XMLName  xml.Name     `xml:"PubmedArticleSet"`
	Articles []XMLArticle `xml:"PubmedArticle"`
}

// XMLArticle represents a single <PubmedArticle>.
type XMLArticle struct {
	Citation XMLMedlineCitation `xml:"MedlineCitation"`
	Data     XMLPubmedData      `xml:"PubmedData"`
}

// XMLMedlineCitation represents <MedlineCitation>.
type XMLMedlineCitation struct {
	PMID     string         `xml:"PMID"`
	Article  XMLArticleMeta `xml:"Article"`
	Keywords []string       `xml:"KeywordList>Keyword"`
	Mesh     []string       `xml:"MeshHeadingList>MeshHeading>DescriptorName"`
}

// XMLArticleMeta represents <MedlineCitation><Article>.
type XMLArticleMeta struct {
	Title    XMLInnerText      `xml:"ArticleTitle"`
	Abstract []XMLAbstractText `xml:"Abstract>AbstractText"`
	Authors  []XMLAuthor       `xml:"AuthorList>Author"`
	Journal  XMLJournal        `xml:"Journal"`
}

// XMLInnerText captures an element's inner XML verbatim.
type XMLInnerText struct {
	Inner string `xml:",innerxml"`
}

// XMLAbstractText represents one <AbstractText> paragraph.
type XMLAbstractText struct {
	Label string `xml:"Label,attr"`
	Inner string `xml:",innerxml"`
}

// XMLAuthor represents an <Author> entry.
type XMLAuthor struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Initials     string   `xml:"Initials"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

// XMLJournal represents <Journal>.
type XMLJournal struct {
	ISSN  XMLISSN         `xml:"ISSN"`
	Issue XMLJournalIssue `xml:"JournalIssue"`
	Title string          `xml:"Title"`
	Abbr  string          `xml:"ISOAbbreviation"`
}

// XMLISSN represents <ISSN> with its IssnType attribute.
type XMLISSN struct {
	Type  string `xml:"IssnType,attr"`
	Value string `xml:",chardata"`
}

// XMLJournalIssue represents <JournalIssue>.
type XMLJournalIssue struct {
	Volume  string     `xml:"Volume"`
	Issue   string     `xml:"Issue"`
	PubDate XMLPubDate `xml:"PubDate"`
}

// XMLPubDate represents <PubDate> and its mutually exclusive encodings.
type XMLPubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	Season      string `xml:"Season"`
	MedlineDate string `xml:"MedlineDate"`
}

// XMLPubmedData represents <PubmedData>.
type XMLPubmedData struct {
	IDs        []XMLArticleID `xml:"ArticleIdList>ArticleId"`
	References []XMLReference `xml:"ReferenceList>Reference"`
}

// XMLArticleID represents <ArticleId> with its IdType attribute.
type XMLArticleID struct {
	Type  string `xml:"IdType,attr"`
	Value string `xml:",chardata"`
}

// XMLReference represents one <Reference> entry.
type XMLReference struct {
	Citation string         `xml:"Citation"`
	IDs      []XMLArticleID `xml:"ArticleIdList>ArticleId"`
}

// ---------------------------------------------------------------------------
// Parsing and assembly.
// ---------------------------------------------------------------------------

// Parse reads PubMed XML and returns article records. An article whose
// publication date matches no known encoding is skipped with an error log
// naming its PMID (or aborts the parse when opts.Strict is set); the batch
// itself keeps going.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*article.Article, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	var set XMLArticleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing PubMed XML: %w", err)
	}
	if len(set.Articles) == 0 {
		return nil, fmt.Errorf("no <PubmedArticle> elements found in input")
	}

	records := make([]*article.Article, 0, len(set.Articles))
	for i := range set.Articles {
		xa := &set.Articles[i]
		rec, err := MapArticle(xa)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("article %s: %w", xa.Citation.PMID, err)
			}
			slog.Error("cannot map article",
				"pmid", xa.Citation.PMID,
				"source", opts.SourceName,
				"error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// MapArticle assembles one parsed <PubmedArticle> into an article record.
func MapArticle(xa *XMLArticle) (*article.Article, error) {
	date, err := pubdate.Resolve(pubdate.Source{
		Year:        strings.TrimSpace(xa.Citation.Article.Journal.Issue.PubDate.Year),
		Month:       strings.TrimSpace(xa.Citation.Article.Journal.Issue.PubDate.Month),
		Day:         strings.TrimSpace(xa.Citation.Article.Journal.Issue.PubDate.Day),
		Season:      strings.TrimSpace(xa.Citation.Article.Journal.Issue.PubDate.Season),
		MedlineDate: strings.TrimSpace(xa.Citation.Article.Journal.Issue.PubDate.MedlineDate),
	})
	if err != nil {
		return nil, err
	}

	rec := &article.Article{
		PMID:         strings.TrimSpace(xa.Citation.PMID),
		IDs:          mapIDs(xa.Data.IDs),
		Title:        strings.TrimSpace(xa.Citation.Article.Title.Inner),
		Abstract:     mapAbstract(xa.Citation.Article.Abstract),
		Keywords:     xa.Citation.Keywords,
		MeshHeadings: xa.Citation.Mesh,
		Volume:       xa.Citation.Article.Journal.Issue.Volume,
		Issue:        xa.Citation.Article.Journal.Issue.Issue,
		Journal: article.Journal{
			ISSN:     xa.Citation.Article.Journal.ISSN.Value,
			ISSNType: xa.Citation.Article.Journal.ISSN.Type,
			Title:    xa.Citation.Article.Journal.Title,
			Abbr:     xa.Citation.Article.Journal.Abbr,
		},
		Pubdate: date,
	}

	for _, xau := range xa.Citation.Article.Authors {
		rec.Authors = append(rec.Authors, mapAuthor(&xau, rec.PMID))
	}
	for _, xref := range xa.Data.References {
		rec.References = append(rec.References, article.Reference{
			Citation: strings.TrimSpace(xref.Citation),
			IDs:      mapIDs(xref.IDs),
		})
	}
	return rec, nil
}

// mapAuthor keeps the raw affiliation text and attaches the structured
// decomposition when one of the affiliation grammars matches. An unmatched
// affiliation is a soft omission: a warning names the text so grammar
// coverage can be improved later.
func mapAuthor(xau *XMLAuthor, pmid string) article.Author {
	a := article.Author{
		LastName: xau.LastName,
		Forename: xau.ForeName,
		Initials: xau.Initials,
	}
	if len(xau.Affiliations) > 0 {
		a.Affiliation = strings.TrimSpace(xau.Affiliations[0])
	}
	if a.Affiliation != "" {
		if info, ok := affiliation.Resolve(a.Affiliation); ok {
			a.AffiliationInfo = info
		} else {
			slog.Warn("unresolved affiliation", "pmid", pmid, "text", a.Affiliation)
		}
	}
	return a
}

func mapIDs(xids []XMLArticleID) []article.ID {
	ids := make([]article.ID, 0, len(xids))
	for _, xid := range xids {
		ids = append(ids, article.ID{
			Type:  xid.Type,
			Value: strings.TrimSpace(xid.Value),
		})
	}
	return ids
}

// mapAbstract renders the abstract paragraphs as HTML the way the output
// line format expects: each <AbstractText> becomes a <p>, and a Label
// attribute becomes a leading <strong>Label: </strong> with the label
// capitalized.
func mapAbstract(paragraphs []XMLAbstractText) string {
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString("<p>")
		if p.Label != "" {
			b.WriteString("<strong>")
			b.WriteString(capitalizeLabel(p.Label))
			b.WriteString(": </strong>")
		}
		b.WriteString(strings.TrimSpace(p.Inner))
		b.WriteString("</p>")
	}
	return b.String()
}

func capitalizeLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
