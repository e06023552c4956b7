package executor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	out, err := New().Execute(context.Background(), "echo", "hello", "world")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello world" {
		t.Errorf("Execute() = %q, want %q", out, "hello world")
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Execute() error = %v, want *CommandError", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Execute() error should wrap exec.ErrNotFound, got %v", err)
	}
}

func TestExecuteNonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := New().Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Execute() error = %v, want *CommandError", err)
	}
	if cmdErr.Stderr != "broken" {
		t.Errorf("Stderr = %q, want %q", cmdErr.Stderr, "broken")
	}
}
