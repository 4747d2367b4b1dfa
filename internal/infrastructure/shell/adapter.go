package shell

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"desktop-assistant/internal/application/port/output"
)

var _ output.ShellPort = (*Adapter)(nil)

// windowsApps maps friendly names to executables, mirroring what users
// actually ask for ("open calculator").
var windowsApps = map[string]string{
	"notepad":    "notepad.exe",
	"calculator": "calc.exe",
	"cmd":        "cmd.exe",
	"powershell": "powershell.exe",
}

type Adapter struct {
	logger output.LoggerPort
}

func NewAdapter(logger output.LoggerPort) *Adapter {
	return &Adapter{logger: logger}
}

// OpenApp launches an application without waiting for it to exit.
func (a *Adapter) OpenApp(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("no application name given")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		exe := name
		if mapped, ok := windowsApps[strings.ToLower(name)]; ok {
			exe = mapped
		}
		cmd = exec.Command("cmd", "/C", "start", "", exe)
	case "darwin":
		cmd = exec.Command("open", "-a", name)
	default:
		cmd = exec.Command(name)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

// Run executes command through the platform shell and returns combined
// stdout+stderr. The output is returned even when the command exits non-zero
// so callers can report it alongside the failure. Run blocks for as long as
// the command does; arbitrary command execution has no watchdog here.
func (a *Adapter) Run(ctx context.Context, command string) (string, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("exit code %d", exitErr.ExitCode())
		}
		return string(out), err
	}
	return string(out), nil
}
