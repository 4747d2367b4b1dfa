package output

import "context"

type ClipboardPort interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}
