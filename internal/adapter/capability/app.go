package capability

import (
	"context"
	"fmt"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

type OpenAppCapability struct {
	shell  output.ShellPort
	logger output.LoggerPort
}

func NewOpenAppCapability(shell output.ShellPort, logger output.LoggerPort) *OpenAppCapability {
	return &OpenAppCapability{shell: shell, logger: logger}
}

func (c *OpenAppCapability) Name() entity.ActionName { return entity.ActionOpenApp }
func (c *OpenAppCapability) Description() string     { return "Opens an application by name" }
func (c *OpenAppCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "name", Kind: entity.ArgString, Default: ""},
	}
}

func (c *OpenAppCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	name := args.String("name")
	if err := c.shell.OpenApp(ctx, name); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	return fmt.Sprintf("Opened %s.", name), nil
}
