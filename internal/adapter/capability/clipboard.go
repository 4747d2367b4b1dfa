package capability

import (
	"context"
	"fmt"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

type ReadClipboardCapability struct {
	clipboard output.ClipboardPort
	logger    output.LoggerPort
}

func NewReadClipboardCapability(clipboard output.ClipboardPort, logger output.LoggerPort) *ReadClipboardCapability {
	return &ReadClipboardCapability{clipboard: clipboard, logger: logger}
}

func (c *ReadClipboardCapability) Name() entity.ActionName { return entity.ActionReadClipboard }
func (c *ReadClipboardCapability) Description() string     { return "Returns the current clipboard text" }
func (c *ReadClipboardCapability) Args() []entity.ArgSpec  { return nil }

func (c *ReadClipboardCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	text, err := c.clipboard.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return text, nil
}

type WriteClipboardCapability struct {
	clipboard output.ClipboardPort
	logger    output.LoggerPort
}

func NewWriteClipboardCapability(clipboard output.ClipboardPort, logger output.LoggerPort) *WriteClipboardCapability {
	return &WriteClipboardCapability{clipboard: clipboard, logger: logger}
}

func (c *WriteClipboardCapability) Name() entity.ActionName { return entity.ActionWriteClipboard }
func (c *WriteClipboardCapability) Description() string     { return "Replaces the clipboard contents with text" }
func (c *WriteClipboardCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "text", Kind: entity.ArgString, Default: ""},
	}
}

func (c *WriteClipboardCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	if err := c.clipboard.Write(ctx, args.String("text")); err != nil {
		return "", fmt.Errorf("clipboard write failed: %w", err)
	}
	return "Copied to clipboard.", nil
}
