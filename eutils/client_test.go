package eutils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const efetchResponse = `<?xml version="1.0" encoding="UTF-8"?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>32329900</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <Volume>48</Volume>
            <Issue>W1</Issue>
            <PubDate><Year>2020</Year><Month>Jul</Month><Day>2</Day></PubDate>
          </JournalIssue>
          <Title>Nucleic acids research</Title>
          <ISOAbbreviation>Nucleic Acids Res</ISOAbbreviation>
        </Journal>
        <ArticleTitle>A fetched article.</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestFetchArticle(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(efetchResponse))
	}))
	defer srv.Close()

	client := &Client{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		APIKey:     "secret",
	}

	rec, err := client.FetchArticle(context.Background(), "32329900")
	if err != nil {
		t.Fatalf("FetchArticle failed: %v", err)
	}

	if rec.PMID != "32329900" {
		t.Errorf("PMID: got %q", rec.PMID)
	}
	if got := rec.Pubdate.String(); got != "2020-07-02" {
		t.Errorf("Pubdate: got %q", got)
	}

	for key, want := range map[string]string{
		"db":      "pubmed",
		"id":      "32329900",
		"retmode": "xml",
		"api_key": "secret",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query %s: got %v, want %q", key, got, want)
		}
	}
}

func TestFetchArticleHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := client.FetchArticle(context.Background(), "1"); err == nil {
		t.Error("FetchArticle succeeded, want error on HTTP 429")
	}
}

func TestFetchArticleBadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := client.FetchArticle(context.Background(), "1"); err == nil {
		t.Error("FetchArticle succeeded, want parse error")
	}
}
