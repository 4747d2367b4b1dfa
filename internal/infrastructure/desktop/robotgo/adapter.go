package robotgo

import (
	"context"
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"

	"desktop-assistant/internal/application/port/output"
)

var _ output.DesktopPort = (*Adapter)(nil)

// Adapter drives the host's keyboard, mouse and screen through robotgo.
// Calls are fire-and-forget against the OS input queue; context is accepted
// for interface symmetry but the underlying library does not support
// cancellation mid-gesture.
type Adapter struct {
	logger output.LoggerPort
}

func NewAdapter(logger output.LoggerPort) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) TypeText(ctx context.Context, text string) error {
	robotgo.TypeStr(text)
	return nil
}

func (a *Adapter) Press(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := robotgo.KeyTap(key); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}

func (a *Adapter) Hotkey(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("hotkey requires at least one key")
	}
	// robotgo takes the tapped key first and the held modifiers after.
	tap := keys[len(keys)-1]
	mods := make([]any, 0, len(keys)-1)
	for _, m := range keys[:len(keys)-1] {
		mods = append(mods, m)
	}
	if err := robotgo.KeyTap(tap, mods...); err != nil {
		return fmt.Errorf("hotkey %v: %w", keys, err)
	}
	return nil
}

func (a *Adapter) MoveMouse(ctx context.Context, x, y int, duration float64) error {
	if duration > 0 {
		robotgo.MoveSmooth(x, y)
	} else {
		robotgo.Move(x, y)
	}
	return nil
}

func (a *Adapter) Click(ctx context.Context, button string, clicks int) error {
	if clicks < 1 {
		clicks = 1
	}
	for i := 0; i < clicks; i++ {
		robotgo.Click(button)
	}
	return nil
}

func (a *Adapter) Scroll(ctx context.Context, amount int) error {
	robotgo.Scroll(0, amount)
	return nil
}

func (a *Adapter) CaptureScreen(ctx context.Context) (image.Image, error) {
	img, err := robotgo.CaptureImg()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}
