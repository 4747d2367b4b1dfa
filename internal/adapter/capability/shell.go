package capability

import (
	"context"
	"fmt"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

type SystemCommandCapability struct {
	shell  output.ShellPort
	logger output.LoggerPort
}

func NewSystemCommandCapability(shell output.ShellPort, logger output.LoggerPort) *SystemCommandCapability {
	return &SystemCommandCapability{shell: shell, logger: logger}
}

func (c *SystemCommandCapability) Name() entity.ActionName { return entity.ActionSystemCommand }
func (c *SystemCommandCapability) Description() string     { return "Runs a shell command and returns its output" }
func (c *SystemCommandCapability) Args() []entity.ArgSpec {
	return []entity.ArgSpec{
		{Key: "cmd", Kind: entity.ArgString, Default: ""},
	}
}

func (c *SystemCommandCapability) Execute(ctx context.Context, args entity.ArgValues) (string, error) {
	out, err := c.shell.Run(ctx, args.String("cmd"))
	if err != nil {
		if out != "" {
			return "", fmt.Errorf("command failed: %v\n%s", err, out)
		}
		return "", fmt.Errorf("command failed: %w", err)
	}
	return out, nil
}
