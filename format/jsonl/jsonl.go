// Package jsonl writes article records as JSON lines.
package jsonl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/soultoolman/pubmed-mapper/article"
	"github.com/soultoolman/pubmed-mapper/format"
)

// Format implements format.Serializer for JSON lines output.
type Format struct{}

func init() {
	format.Register(&Format{})
}

// Name returns the format identifier.
func (f *Format) Name() string { return "jsonl" }

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON lines, one article object per line"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string { return []string{"jsonl", "ndjson"} }

// CanParse returns false; jsonl is output-only.
func (f *Format) CanParse(peek []byte) bool { return false }

// Serialize writes one JSON object per article. Pretty emits indented
// objects instead (for single-record output).
func (f *Format) Serialize(w io.Writer, records []*article.Article, opts *format.SerializeOptions) error {
	enc := json.NewEncoder(w)
	// Abstracts and titles carry HTML markup; keep it readable.
	enc.SetEscapeHTML(false)
	if opts != nil && opts.Pretty {
		enc.SetIndent("", "    ")
	}
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding article %s: %w", rec.PMID, err)
		}
	}
	return nil
}
