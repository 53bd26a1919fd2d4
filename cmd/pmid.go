package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/soultoolman/pubmed-mapper/article"
	"github.com/soultoolman/pubmed-mapper/eutils"
	"github.com/soultoolman/pubmed-mapper/format"
)

func newPmidCmd() *cobra.Command {
	var pmid string

	cmd := &cobra.Command{
		Use:   "pmid",
		Short: "Fetch and parse a single PubMed ID",
		Long: `Fetch one article from the NCBI E-utilities efetch endpoint by its
PubMed ID and print it as indented JSON. Set NCBI_API_KEY (directly or via
a .env file) to raise NCBI's rate limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := eutils.NewClient()
			rec, err := client.FetchArticle(cmd.Context(), pmid)
			if err != nil {
				return err
			}
			serializer, err := format.GetSerializer("jsonl")
			if err != nil {
				return err
			}
			return serializer.Serialize(os.Stdout, []*article.Article{rec}, &format.SerializeOptions{Pretty: true})
		},
	}

	cmd.Flags().StringVarP(&pmid, "pmid", "p", "", "PubMed ID, eg, 32329900")
	_ = cmd.MarkFlagRequired("pmid")

	return cmd
}
