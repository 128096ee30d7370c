// Package printer hands pre-rendered text to the system print spooler.
// Printing is best effort: a failure here must never roll back or block a
// committed ledger transaction, so callers log and move on.
package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type Spooler struct {
	command string
	timeout time.Duration
}

// New builds a spooler around the given command ("lp" for CUPS). A zero
// timeout falls back to 10 seconds.
func New(command string, timeout time.Duration) *Spooler {
	if command == "" {
		command = "lp"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Spooler{command: command, timeout: timeout}
}

// Print pipes content to the spooler command under the spooler's own
// timeout, independent of any caller deadline.
func (s *Spooler) Print(ctx context.Context, content string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command)
	cmd.Stdin = strings.NewReader(content)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("print command %q timed out", s.command)
	}

	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("print command %q not found, ensure CUPS is installed", s.command)
	}

	msg := strings.TrimSpace(stderr.String())
	if msg != "" {
		return fmt.Errorf("print failed: %s", msg)
	}

	return fmt.Errorf("print failed: %w", err)
}
