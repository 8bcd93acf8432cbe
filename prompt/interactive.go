package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Interactive is the terminal-backed Prompter. Each question runs as its own
// huh form so a dismissal maps cleanly onto ErrCancelled for that question.
type Interactive struct{}

// NewInteractive creates a terminal-backed prompter.
func NewInteractive() *Interactive {
	return &Interactive{}
}

var _ Prompter = (*Interactive)(nil)

// Input implements Prompter.
func (p *Interactive) Input(title, placeholder string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Placeholder(placeholder).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", normalize(err)
	}
	return value, nil
}

// Select implements Prompter.
func (p *Interactive) Select(title string, options []string) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", normalize(err)
	}
	return value, nil
}

// MultiSelect implements Prompter.
func (p *Interactive) MultiSelect(title string, options []string) ([]string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	var values []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().Title(title).Options(opts...).Value(&values),
	))
	if err := form.Run(); err != nil {
		return nil, normalize(err)
	}
	return values, nil
}

// Confirm implements Prompter.
func (p *Interactive) Confirm(title string) (bool, error) {
	var value bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&value),
	))
	if err := form.Run(); err != nil {
		return false, normalize(err)
	}
	return value, nil
}

// normalize maps a huh abort onto ErrCancelled and wraps everything else.
func normalize(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt failed: %w", err)
}
