package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/konsave-menu/cmd/konsave-menu/tui"
	"github.com/ruminaider/konsave-menu/internal/actions"
)

var (
	errInputRequired   = errors.New("input required: pass it as an argument")
	errConfirmRequired = errors.New("confirmation required: pass --yes")
)

// interactive reports whether stdin is a terminal.
var interactive = func() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// newPrompter returns interactive forms on a terminal and a console prompter
// otherwise.
func newPrompter() actions.Prompter {
	if interactive() {
		return formPrompter{}
	}
	return consolePrompter{}
}

// formPrompter asks through huh forms.
type formPrompter struct{}

func runForm(fields ...huh.Field) error {
	err := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCatppuccin()).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return actions.ErrCancelled
	}
	return err
}

func (formPrompter) Confirm(title, message string) (bool, error) {
	var ok bool
	err := runForm(huh.NewConfirm().
		Title(title).
		Description(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok))
	return ok, err
}

func (formPrompter) Input(title, prompt, initial string) (string, error) {
	value := initial
	err := runForm(huh.NewInput().
		Title(title).
		Description(prompt).
		Value(&value))
	return value, err
}

func (formPrompter) OpenFile(title, dir, ext string) (string, error) {
	var path string
	err := runForm(huh.NewFilePicker().
		Title(title).
		CurrentDirectory(dir).
		AllowedTypes([]string{ext}).
		Picking(true).
		Height(12).
		Value(&path))
	return path, err
}

func (formPrompter) Notify(level actions.Level, title, message string) {
	// Esc on a note is the same as acknowledging it.
	_ = runForm(huh.NewNote().
		Title(levelPrefix(level) + title).
		Description(message).
		Next(true).
		NextLabel("OK"))
}

func (formPrompter) Busy(label string, fn func()) {
	// RunBusy has already run fn when the spinner fails.
	_ = tui.RunBusy(label, fn)
}

// consolePrompter serves scripts and pipes. It never reads stdin: prompts
// fail unless a default is available, and notices are printed.
type consolePrompter struct {
	out io.Writer
	err io.Writer
}

func (p consolePrompter) stdout() io.Writer {
	if p.out == nil {
		return os.Stdout
	}
	return p.out
}

func (p consolePrompter) stderr() io.Writer {
	if p.err == nil {
		return os.Stderr
	}
	return p.err
}

func (consolePrompter) Confirm(title, message string) (bool, error) {
	return false, fmt.Errorf("%s: %w", message, errConfirmRequired)
}

func (consolePrompter) Input(title, prompt, initial string) (string, error) {
	if initial != "" {
		return initial, nil
	}
	return "", fmt.Errorf("%w (%s)", errInputRequired, strings.TrimSuffix(prompt, ":"))
}

func (consolePrompter) OpenFile(title, dir, ext string) (string, error) {
	return "", fmt.Errorf("%w (%s)", errInputRequired, title)
}

func (p consolePrompter) Notify(level actions.Level, title, message string) {
	w := p.stdout()
	if level != actions.LevelInfo {
		w = p.stderr()
	}
	fmt.Fprintf(w, "%s%s: %s\n", levelPrefix(level), title, strings.ReplaceAll(message, "\n", " "))
}

func (consolePrompter) Busy(label string, fn func()) {
	fn()
}

func levelPrefix(level actions.Level) string {
	switch level {
	case actions.LevelWarning:
		return "Warning: "
	case actions.LevelError:
		return "Error: "
	}
	return ""
}
