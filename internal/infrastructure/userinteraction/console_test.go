package userinteraction

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConfirm_Affirmative(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleWith(strings.NewReader("y\n"), &out)

	if !c.Confirm(context.Background(), "run it?") {
		t.Error("'y' should approve")
	}
	if !strings.Contains(out.String(), "Allow? (y/N)") {
		t.Errorf("prompt missing: %q", out.String())
	}
}

func TestConfirm_CaseFoldedAndTrimmed(t *testing.T) {
	c := NewConsoleWith(strings.NewReader("  Y \n"), &bytes.Buffer{})

	if !c.Confirm(context.Background(), "run it?") {
		t.Error("' Y ' should approve after trimming and case folding")
	}
}

func TestConfirm_AnythingElseDenies(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "yes\n", "\n", "sure\n"} {
		c := NewConsoleWith(strings.NewReader(answer), &bytes.Buffer{})
		if c.Confirm(context.Background(), "run it?") {
			t.Errorf("%q must deny: only 'y' approves", strings.TrimSpace(answer))
		}
	}
}

func TestConfirm_ReadFailureDenies(t *testing.T) {
	c := NewConsoleWith(strings.NewReader(""), &bytes.Buffer{})

	if c.Confirm(context.Background(), "run it?") {
		t.Error("EOF on the prompt must deny")
	}
}

func TestReadLine_Trims(t *testing.T) {
	c := NewConsoleWith(strings.NewReader("  open notepad  \n"), &bytes.Buffer{})

	line, err := c.ReadLine("You: ")
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if line != "open notepad" {
		t.Errorf("expected trimmed line, got %q", line)
	}
}
