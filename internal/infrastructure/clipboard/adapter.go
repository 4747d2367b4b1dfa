package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"desktop-assistant/internal/application/port/output"
)

var _ output.ClipboardPort = (*Adapter)(nil)

type Adapter struct{}

func NewAdapter() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Read(ctx context.Context) (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func (a *Adapter) Write(ctx context.Context, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
