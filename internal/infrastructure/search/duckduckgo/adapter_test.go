package duckduckgo

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const resultsPage = `
<html><body>
<div class="results">
  <div class="result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F&amp;rut=abc">The Go Programming Language</a>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F">Go is an open source programming language.</a>
  </div>
  <div class="result">
    <a class="result__a" href="https://go.dev/doc/">Documentation</a>
    <a class="result__snippet" href="https://go.dev/doc/">Learn how to <b>use Go</b>.</a>
  </div>
  <div class="result">
    <a class="result__a" href="https://go.dev/blog/">The Go Blog</a>
  </div>
</div>
</body></html>`

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestExtractResults_TitleSnippetURL(t *testing.T) {
	results := extractResults(parsePage(t, resultsPage), 10)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	first := results[0]
	if first.Title != "The Go Programming Language" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.URL != "https://go.dev/" {
		t.Errorf("redirect link not unwrapped: %q", first.URL)
	}
	if first.Snippet != "Go is an open source programming language." {
		t.Errorf("unexpected snippet: %q", first.Snippet)
	}
}

func TestExtractResults_NestedMarkupInSnippet(t *testing.T) {
	results := extractResults(parsePage(t, resultsPage), 10)

	if results[1].Snippet != "Learn how to use Go." {
		t.Errorf("nested tags should flatten to text: %q", results[1].Snippet)
	}
}

func TestExtractResults_MissingSnippetLeftEmpty(t *testing.T) {
	results := extractResults(parsePage(t, resultsPage), 10)

	if results[2].Snippet != "" {
		t.Errorf("expected empty snippet, got %q", results[2].Snippet)
	}
}

func TestExtractResults_MaxResultsRespected(t *testing.T) {
	results := extractResults(parsePage(t, resultsPage), 2)

	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestExtractResults_EmptyPage(t *testing.T) {
	results := extractResults(parsePage(t, "<html><body></body></html>"), 5)

	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCleanHref(t *testing.T) {
	cases := map[string]string{
		"//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc%2F": "https://go.dev/doc/",
		"https://go.dev/":  "https://go.dev/",
		"//example.com/x":  "https://example.com/x",
	}
	for in, want := range cases {
		if got := cleanHref(in); got != want {
			t.Errorf("cleanHref(%q) = %q, want %q", in, got, want)
		}
	}
}
