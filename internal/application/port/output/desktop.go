package output

import (
	"context"
	"image"
)

// DesktopPort wraps the host's input-automation layer.
type DesktopPort interface {
	TypeText(ctx context.Context, text string) error
	Press(ctx context.Context, keys []string) error
	Hotkey(ctx context.Context, keys []string) error
	MoveMouse(ctx context.Context, x, y int, duration float64) error
	Click(ctx context.Context, button string, clicks int) error
	Scroll(ctx context.Context, amount int) error
	CaptureScreen(ctx context.Context) (image.Image, error)
}
