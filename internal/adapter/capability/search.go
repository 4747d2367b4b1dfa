package capability

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

const defaultMaxResults = 5

type SearchWebCapability struct {
	search output.SearchPort
	logger output.LoggerPort
}

func NewSearchWebCapability(search output.SearchPort, logger output.LoggerPort) *SearchWebCapability {
	return &SearchWebCapability{search: search, logger: logger}
}

func (c *SearchWebCapability) Name() entity.ActionName { return entity.ActionSearchWeb }
func (c *SearchWebCapability) Description() string     { return "Searches the web and returns the top results" }
func (c *SearchWebCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "query", Kind: entity.ArgString, Default: ""},
		{Key: "max_results", Kind: entity.ArgInt, Default: defaultMaxResults},
	}
}

func (c *SearchWebCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	results, err := c.search.Search(ctx, args.String("query"), args.Int("max_results"))
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return "No results.", nil
	}

	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n%s\n%s\n\n", i+1, r.Title, r.Snippet, r.URL)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
