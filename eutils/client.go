// Package eutils fetches single PubMed records over the NCBI E-utilities API.
package eutils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/soultoolman/pubmed-mapper/article"
	"github.com/soultoolman/pubmed-mapper/format"
	"github.com/soultoolman/pubmed-mapper/format/pubmed"
)

// DefaultBaseURL is the NCBI efetch endpoint.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// Client fetches PubMed articles by PMID.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// APIKey raises NCBI's rate limit when set. See NCBI_API_KEY.
	APIKey string
}

// NewClient returns a client for the public NCBI endpoint. The API key is
// taken from the NCBI_API_KEY environment variable when present.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		APIKey:     os.Getenv("NCBI_API_KEY"),
	}
}

// FetchArticle downloads and maps a single article by PubMed ID.
func (c *Client) FetchArticle(ctx context.Context, pmid string) (*article.Article, error) {
	query := url.Values{}
	query.Set("db", "pubmed")
	query.Set("id", pmid)
	query.Set("retmode", "xml")
	if c.APIKey != "" {
		query.Set("api_key", c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building efetch request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching PMID %s: %w", pmid, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching PMID %s: unexpected status %s", pmid, resp.Status)
	}

	parser := &pubmed.Format{}
	records, err := parser.Parse(resp.Body, &format.ParseOptions{
		SourceName: "efetch:" + pmid,
		Strict:     true,
	})
	if err != nil {
		return nil, err
	}
	return records[0], nil
}
