// Package prompt is the boundary between the generators and the interactive
// host. The core consumes exactly four capabilities: text input, single
// choice, multiple choice and confirmation. Every one of them can report
// cancellation, and cancellation is a universal abort signal: the caller
// stops the remaining pipeline without writing anything further.
//
// Prompt results are normalized to plain Go values at this boundary; nothing
// downstream ever branches on the shape of a raw prompt result.
package prompt

import "errors"

// ErrCancelled is returned by every Prompter method when the user dismisses
// the prompt. Callers treat it as "operation cancelled", not as a failure:
// no error message is shown and no partial artifacts are written past the
// cancellation point.
var ErrCancelled = errors.New("operation cancelled")

// Prompter is the capability set the generators consume from the host.
type Prompter interface {
	// Input asks for a free-text value.
	Input(title, placeholder string) (string, error)
	// Select asks for exactly one of the given options.
	Select(title string, options []string) (string, error)
	// MultiSelect asks for any subset of the given options.
	MultiSelect(title string, options []string) ([]string, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
}
