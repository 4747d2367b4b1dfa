package capability

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

const defaultScreenshotPath = "./screenshot.png"

type ScreenshotCapability struct {
	desktop output.DesktopPort
	logger  output.LoggerPort
}

func NewScreenshotCapability(desktop output.DesktopPort, logger output.LoggerPort) *ScreenshotCapability {
	return &ScreenshotCapability{desktop: desktop, logger: logger}
}

func (c *ScreenshotCapability) Name() entity.ActionName { return entity.ActionScreenshot }
func (c *ScreenshotCapability) Description() string     { return "Captures the screen and saves it to a file" }
func (c *ScreenshotCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "path", Kind: entity.ArgString, Default: defaultScreenshotPath},
	}
}

func (c *ScreenshotCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	path := args.String("path")
	if path == "" {
		path = defaultScreenshotPath
	}

	img, err := c.desktop.CaptureScreen(ctx)
	if err != nil {
		return "", fmt.Errorf("screen capture failed: %w", err)
	}

	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %w", err)
	}

	return fmt.Sprintf("Screenshot saved to %s", path), nil
}
