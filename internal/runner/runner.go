package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the captured outcome of one external command.
type Result struct {
	Command  string
	Args     []string
	ExitCode int // -1 when the process could not be started
	Stdout   string
	Stderr   string
	Err      error
}

// Failed reports whether the command did not start or exited non-zero.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Error returns a *CommandError for a failed result, or nil.
func (r Result) Error() error {
	if !r.Failed() {
		return nil
	}
	return &CommandError{
		Command:  r.String(),
		ExitCode: r.ExitCode,
		Stderr:   strings.TrimSpace(r.Stderr),
		Err:      r.Err,
	}
}

// LastLine returns the last non-empty line of stdout.
func (r Result) LastLine() string {
	return lastLine(r.Stdout)
}

// String renders the command line for status and log messages.
func (r Result) String() string {
	parts := append([]string{r.Command}, r.Args...)
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, " \t\"'") {
			parts[i] = fmt.Sprintf("%q", p)
		}
	}
	return strings.Join(parts, " ")
}

// CommandError is returned when an external command fails to start or exits
// with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ":\n" + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes external commands to completion.
type Runner interface {
	Run(name string, args ...string) Result
}

// Exec runs commands as real processes. Arguments are passed as argv, never
// through a shell.
type Exec struct {
	Dir string // working directory; empty inherits the caller's
}

// Run executes name with args and blocks until it exits.
func (e Exec) Run(name string, args ...string) Result {
	res := Result{Command: name, Args: args}

	cmd := exec.Command(name, args...)
	cmd.Dir = e.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		res.ExitCode = -1
		res.Err = err
		return res
	}

	err := cmd.Wait()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode < 0 {
			// Killed by a signal.
			res.ExitCode = 1
			res.Err = err
		}
	default:
		res.ExitCode = 1
		res.Err = err
	}
	return res
}

// Which returns the resolved path of name on PATH.
func Which(name string) (string, bool) {
	p, err := exec.LookPath(name)
	if err != nil || strings.TrimSpace(p) == "" {
		return "", false
	}
	return p, true
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
