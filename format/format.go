// Package format defines the parser/serializer plugin interface.
package format

import (
	"io"

	"github.com/soultoolman/pubmed-mapper/article"
)

// Format describes an input or output format plugin.
type Format interface {
	// Name returns the format identifier (e.g., "pubmed", "jsonl")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into article records.
type Parser interface {
	Format

	Parse(r io.Reader, opts *ParseOptions) ([]*article.Article, error)
}

// Serializer is a format that can write article records to output.
type Serializer interface {
	Format

	Serialize(w io.Writer, records []*article.Article, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// SourceName identifies the input, for log and error messages
	SourceName string

	// Strict aborts on the first unmappable article instead of logging it
	// and continuing with the rest of the batch
	Strict bool
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Pretty enables indented JSON output
	Pretty bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}
