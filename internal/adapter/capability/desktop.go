package capability

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

type TypeTextCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewTypeTextCapability(desktop output.DesktopPort, logger output.LoggerPort) *TypeTextCapability {
	return &TypeTextCapability{desktop: desktop, logger: logger}
}

func (c *TypeTextCapability) Name() entity.ActionName { return entity.ActionTypeText }
func (c *TypeTextCapability) Description() string     { return "Types text at the current cursor position" }
func (c *TypeTextCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "text", Kind: entity.ArgString, Default: ""},
	}
}

func (c *TypeTextCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	if err := c.desktop.TypeText(ctx, args.String("text")); err != nil {
		return "", fmt.Errorf("typing failed: %w", err)
	}
	return "Typed.", nil
}

type PressCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewPressCapability(desktop output.DesktopPort, logger output.LoggerPort) *PressCapability {
	return &PressCapability{desktop: desktop, logger: logger}
}

func (c *PressCapability) Name() entity.ActionName { return entity.ActionPress }
func (c *PressCapability) Description() string     { return "Presses each listed key in order" }
func (c *PressCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "keys", Kind: entity.ArgStringList, Default: []string(nil)},
	}
}

func (c *PressCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	keys := args.StringList("keys")
	if err := c.desktop.Press(ctx, keys); err != nil {
		return "", fmt.Errorf("key press failed: %w", err)
	}
	return fmt.Sprintf("Pressed: %s", strings.Join(keys, ", ")), nil
}

type HotkeyCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewHotkeyCapability(desktop output.DesktopPort, logger output.LoggerPort) *HotkeyCapability {
	return &HotkeyCapability{desktop: desktop, logger: logger}
}

func (c *HotkeyCapability) Name() entity.ActionName { return entity.ActionHotkey }
func (c *HotkeyCapability) Description() string     { return "Presses a key combination with modifiers held" }
func (c *HotkeyCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "keys", Kind: entity.ArgStringList, Default: []string(nil)},
	}
}

func (c *HotkeyCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	keys := args.StringList("keys")
	if err := c.desktop.Hotkey(ctx, keys); err != nil {
		return "", fmt.Errorf("hotkey failed: %w", err)
	}
	return fmt.Sprintf("Hotkey: %s", strings.Join(keys, "+")), nil
}

type MoveMouseCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewMoveMouseCapability(desktop output.DesktopPort, logger output.LoggerPort) *MoveMouseCapability {
	return &MoveMouseCapability{desktop: desktop, logger: logger}
}

func (c *MoveMouseCapability) Name() entity.ActionName { return entity.ActionMoveMouse }
func (c *MoveMouseCapability) Description() string     { return "Moves the mouse cursor to screen coordinates" }
func (c *MoveMouseCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "x", Kind: entity.ArgInt, Default: 0},
		{Key: "y", Kind: entity.ArgInt, Default: 0},
		{Key: "duration", Kind: entity.ArgFloat, Default: 0.2},
	}
}

func (c *MoveMouseCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	x, y := args.Int("x"), args.Int("y")
	if err := c.desktop.MoveMouse(ctx, x, y, args.Float("duration")); err != nil {
		return "", fmt.Errorf("mouse move failed: %w", err)
	}
	return fmt.Sprintf("Moved mouse to (%d,%d).", x, y), nil
}

type ClickCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewClickCapability(desktop output.DesktopPort, logger output.LoggerPort) *ClickCapability {
	return &ClickCapability{desktop: desktop, logger: logger}
}

func (c *ClickCapability) Name() entity.ActionName { return entity.ActionClick }
func (c *ClickCapability) Description() string     { return "Clicks a mouse button at the current position" }
func (c *ClickCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "button", Kind: entity.ArgString, Default: "left"},
		{Key: "clicks", Kind: entity.ArgInt, Default: 1},
	}
}

func (c *ClickCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	button, clicks := args.String("button"), args.Int("clicks")
	if err := c.desktop.Click(ctx, button, clicks); err != nil {
		return "", fmt.Errorf("click failed: %w", err)
	}
	return fmt.Sprintf("Clicked %s x%d.", button, clicks), nil
}

type ScrollCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewScrollCapability(desktop output.DesktopPort, logger output.LoggerPort) *ScrollCapability {
	return &ScrollCapability{desktop: desktop, logger: logger}
}

func (c *ScrollCapability) Name() entity.ActionName { return entity.ActionScroll }
func (c *ScrollCapability) Description() string     { return "Scrolls vertically; positive amount scrolls up" }
func (c *ScrollCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "amount", Kind: entity.ArgInt, Default: 0},
	}
}

func (c *ScrollCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	amount := args.Int("amount")
	if err := c.desktop.Scroll(ctx, amount); err != nil {
		return "", fmt.Errorf("scroll failed: %w", err)
	}
	return fmt.Sprintf("Scrolled %d.", amount), nil
}
