package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/spf13/cobra"

	"github.com/soultoolman/pubmed-mapper/article"
	"github.com/soultoolman/pubmed-mapper/format"
)

func newFileCmd() *cobra.Command {
	var inputFile, outputFile string

	cmd := &cobra.Command{
		Use:   "file",
		Short: "Parse a single PubMed XML file",
		Long: `Parse one PubMed XML file (plain or gzip-compressed) and write its
articles as JSON lines. Articles that cannot be mapped are logged with
their PMID and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(inputFile, outputFile)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input PubMed XML file (.xml or .xml.gz)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file, one JSON object per article (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runFile(inputFile, outputFile string) (err error) {
	records, err := parseFile(inputFile)
	if err != nil {
		return err
	}

	var output io.Writer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	if err := writeRecords(output, records); err != nil {
		return err
	}

	slog.Info("parsed file", "file", inputFile, "articles", len(records))
	return nil
}

// parseFile opens a PubMed XML file, transparently decompressing gzip, and
// parses it into article records.
func parseFile(path string) (_ []*article.Article, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip input %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	parser, err := format.GetParser("pubmed")
	if err != nil {
		return nil, err
	}

	records, err := parser.Parse(r, &format.ParseOptions{SourceName: filepath.Base(path)})
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

func writeRecords(w io.Writer, records []*article.Article) error {
	serializer, err := format.GetSerializer("jsonl")
	if err != nil {
		return err
	}
	return serializer.Serialize(w, records, &format.SerializeOptions{Pretty: cfg.Pretty})
}
