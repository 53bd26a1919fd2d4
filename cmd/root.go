// Package cmd provides CLI commands for pubmed-mapper.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/soultoolman/pubmed-mapper/config"

	// Register format plugins
	_ "github.com/soultoolman/pubmed-mapper/format/jsonl"
	_ "github.com/soultoolman/pubmed-mapper/format/pubmed"
)

var (
	configFile string
	cfg        = config.Default()
)

// NewRootCmd builds the pubmed-mapper command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubmed-mapper",
		Short: "Map PubMed XML to structured JSON lines",
		Long: `pubmed-mapper maps PubMed/MEDLINE article XML into structured records
and writes them out as JSON, one article per line.

Publication dates and author affiliations are resolved through fixed
recognizer cascades; an article whose date matches no known encoding is
skipped and logged, never aborting the batch.

Examples:
  pubmed-mapper file -i pubmed24n0001.xml.gz -o articles.jsonl
  pubmed-mapper directory -i baseline/ -o articles.jsonl --workers 8
  pubmed-mapper pmid -p 32329900`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env if present (ignore errors)
			_ = godotenv.Load()
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			setupLogger(cfg.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	cmd.AddCommand(newFileCmd())
	cmd.AddCommand(newDirectoryCmd())
	cmd.AddCommand(newPmidCmd())

	return cmd
}

func setupLogger(level string) {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = strings.ToUpper(level)
	}

	var slogLevel slog.Level
	switch logLevel {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "INFO":
		slogLevel = slog.LevelInfo
	case "WARN", "WARNING":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})
	slog.SetDefault(slog.New(handler))
}
