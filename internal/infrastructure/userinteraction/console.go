package userinteraction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"desktop-assistant/internal/application/port/output"
)

var _ output.ConfirmerPort = (*Console)(nil)

const affirmative = "y"

// Console is the operator-facing terminal surface: it reads utterances,
// renders answers and blocks for confirmation of gated actions.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole() *Console {
	return &Console{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewConsoleWith wires explicit streams; used by tests.
func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine blocks for one line of operator input.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm blocks until the operator answers. There is no timeout: a gated
// action must never proceed on ambiguity, so an unanswered prompt stalls.
// Only a trimmed, case-folded "y" counts as approval.
func (c *Console) Confirm(ctx context.Context, prompt string) bool {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(c.out, "\n%s\n", prompt)
	fmt.Fprint(c.out, "Allow? (y/N) ")

	line, err := c.reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == affirmative
}

func (c *Console) ShowAnswer(text string) {
	green := color.New(color.FgGreen)
	green.Fprintf(c.out, "\nAssistant: ")
	fmt.Fprintf(c.out, "%s\n\n", text)
}

func (c *Console) ShowError(err error) {
	red := color.New(color.FgRed)
	red.Fprintf(c.out, "\n[error] %v\n", err)
}

func (c *Console) ShowInfo(text string) {
	fmt.Fprintln(c.out, text)
}
