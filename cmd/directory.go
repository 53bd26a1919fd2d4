package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/soultoolman/pubmed-mapper/format"
)

func newDirectoryCmd() *cobra.Command {
	var inDir, outputFile string
	var workers int

	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Parse a directory of PubMed XML files",
		Long: `Parse every PubMed XML file in a directory and write all articles as
JSON lines to a single output. Files are parsed concurrently; records are
independent, so ordering across files is not preserved. A file that fails
to parse is logged and skipped, never aborting the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectory(inDir, outputFile, workers)
		},
	}

	cmd.Flags().StringVarP(&inDir, "indir", "i", "", "Input directory of PubMed XML files")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file, one JSON object per article (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent file parsers (default: config value)")
	_ = cmd.MarkFlagRequired("indir")

	return cmd
}

func runDirectory(inDir, outputFile string, workers int) (err error) {
	if workers <= 0 {
		workers = cfg.Workers
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, filepath.Join(inDir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files in %s", inDir)
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

	serializer, err := format.GetSerializer("jsonl")
	if err != nil {
		return err
	}
	opts := &format.SerializeOptions{Pretty: cfg.Pretty}

	var (
		mu   sync.Mutex
		done atomic.Int64
	)
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, path := range files {
		g.Go(func() error {
			records, err := parseFile(path)
			if err != nil {
				// A bad file must not abort the rest of the batch.
				slog.Error("cannot parse file", "file", path, "error", err)
				done.Add(1)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if err := serializer.Serialize(output, records, opts); err != nil {
				return err
			}
			slog.Info("parsed file",
				"file", filepath.Base(path),
				"articles", len(records),
				"progress", fmt.Sprintf("%d/%d", done.Add(1), len(files)))
			return nil
		})
	}

	return g.Wait()
}
