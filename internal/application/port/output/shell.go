package output

import "context"

// ShellPort spawns host processes. Run returns whatever output the command
// produced even when it exits non-zero, so failures can be reported verbatim.
type ShellPort interface {
	OpenApp(ctx context.Context, name string) error
	Run(ctx context.Context, command string) (string, error)
}
