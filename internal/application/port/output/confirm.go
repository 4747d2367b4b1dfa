package output

import "context"

// ConfirmerPort blocks for operator approval. True only when the operator's
// trimmed, case-folded response is exactly the affirmative token; a read
// failure or any other response counts as denial.
type ConfirmerPort interface {
	Confirm(ctx context.Context, prompt string) bool
}
