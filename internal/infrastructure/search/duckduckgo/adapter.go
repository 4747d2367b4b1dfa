package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"desktop-assistant/internal/application/port/output"
)

var _ output.SearchPort = (*Adapter)(nil)

const (
	endpoint       = "https://html.duckduckgo.com/html/"
	requestTimeout = 20 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; desktop-assistant/1.0)"
)

// Adapter queries DuckDuckGo's HTML endpoint and scrapes the organic results.
type Adapter struct {
	client *http.Client
	logger output.LoggerPort
}

func NewAdapter(logger output.LoggerPort) *Adapter {
	return &Adapter{
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

func (a *Adapter) Search(ctx context.Context, query string, maxResults int) ([]output.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	results := extractResults(doc, maxResults)
	if a.logger != nil {
		a.logger.Debug("Search completed", "query", query, "results", len(results))
	}
	return results, nil
}

// extractResults walks the result page. Each organic hit carries an
// <a class="result__a"> title link and an <a class="result__snippet"> blurb;
// snippets are attached to the most recent title seen in document order.
func extractResults(doc *html.Node, maxResults int) []output.SearchResult {
	var results []output.SearchResult

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(results) > 0 && len(results) >= maxResults && snippetDone(results) {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			class := attrValue(n, "class")
			switch {
			case strings.Contains(class, "result__a"):
				if len(results) < maxResults {
					results = append(results, output.SearchResult{
						Title: nodeText(n),
						URL:   cleanHref(attrValue(n, "href")),
					})
				}
			case strings.Contains(class, "result__snippet"):
				if len(results) > 0 && results[len(results)-1].Snippet == "" {
					results[len(results)-1].Snippet = nodeText(n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results
}

func snippetDone(results []output.SearchResult) bool {
	return results[len(results)-1].Snippet != ""
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// cleanHref unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=...)
// back to the destination URL.
func cleanHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if decoded, err := url.QueryUnescape(uddg); err == nil {
			return decoded
		}
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
