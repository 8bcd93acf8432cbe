// Package artisan is the boundary to the external build tool. The generators
// issue single commands ("make:migration x", "migrate") and only observe
// success or failure; command output is surfaced in errors but never parsed.
package artisan

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes one artisan command and reports success or failure.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// Error reports a non-zero exit of the external tool for one command. It is
// terminal for the command that issued it, never retried automatically.
type Error struct {
	Command string
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("artisan %s failed: %v: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("artisan %s failed: %v", e.Command, e.Err)
}

// Unwrap exposes the underlying exec error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Exec runs artisan through the PHP interpreter in a project directory.
type Exec struct {
	// Binary is the PHP interpreter; "php" when empty.
	Binary string
	// Dir is the Laravel project root the command runs in.
	Dir string
}

var _ Runner = (*Exec)(nil)

// Run implements Runner. Commands are awaited sequentially; cancellation of
// the context aborts the running command.
func (e *Exec) Run(ctx context.Context, args ...string) error {
	binary := e.Binary
	if binary == "" {
		binary = "php"
	}

	cmdArgs := append([]string{"artisan"}, args...)
	cmd := exec.CommandContext(ctx, binary, cmdArgs...)
	cmd.Dir = e.Dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Debug("running artisan command", "args", args, "dir", e.Dir)
	if err := cmd.Run(); err != nil {
		return &Error{
			Command: strings.Join(args, " "),
			Output:  strings.TrimSpace(output.String()),
			Err:     err,
		}
	}
	return nil
}

// Recorder is a Runner for tests: it records issued commands and returns a
// scripted error, if any.
type Recorder struct {
	Commands [][]string
	Err      error
}

var _ Runner = (*Recorder)(nil)

// Run implements Runner.
func (r *Recorder) Run(_ context.Context, args ...string) error {
	r.Commands = append(r.Commands, args)
	return r.Err
}
