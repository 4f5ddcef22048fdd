// Package bootstrap checks that the external profile tool is reachable and,
// when it is not, works out how the user can fix their PATH. It never
// installs anything or edits shell startup files.
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/runner"
)

// Status describes whether the tool can be launched.
type Status struct {
	Tool   string
	Path   string // resolved executable when Found
	Found  bool
	BinDir string // pip's script directory when the package is installed but not on PATH
	Hint   PathHint
}

// PathHint is the line a user would add to their shell startup file.
type PathHint struct {
	Shell  string
	RCFile string
	Line   string
}

// Checker performs the lookup. The fields are overridable for tests.
type Checker struct {
	Run   runner.Runner
	Which func(name string) (string, bool)
	Home  string
	Shell string // value of $SHELL
}

// NewChecker returns a Checker backed by real processes.
func NewChecker(run runner.Runner, home string) *Checker {
	return &Checker{
		Run:   run,
		Which: runner.Which,
		Home:  home,
		Shell: os.Getenv("SHELL"),
	}
}

// Check reports whether tool is on PATH and, if not, where pip put it.
func (c *Checker) Check(tool string) Status {
	st := Status{Tool: tool}
	if p, ok := c.Which(tool); ok {
		st.Path = p
		st.Found = true
		return st
	}

	res := c.Run.Run("pip", "show", filepath.Base(tool))
	if res.Failed() {
		return st
	}
	loc := ParsePipLocation(res.Stdout)
	if loc == "" {
		return st
	}
	bin := filepath.Join(loc, "bin")
	if info, err := os.Stat(bin); err != nil || !info.IsDir() {
		return st
	}
	st.BinDir = bin
	st.Hint = HintFor(c.Shell, c.Home, bin)
	return st
}

// Message renders a user-facing explanation of a failed check.
func (s Status) Message() string {
	if s.Found {
		return fmt.Sprintf("%s found at %s", s.Tool, s.Path)
	}
	if s.BinDir == "" {
		return fmt.Sprintf("%s was not found on PATH.\nInstall it with: pip install %s", s.Tool, filepath.Base(s.Tool))
	}
	return fmt.Sprintf("%s is installed in %s, but that directory is not on PATH.\n\nShell: %s\nConfig file: %s\n\nAdd this line:\n\n%s",
		s.Tool, s.BinDir, s.Hint.Shell, s.Hint.RCFile, s.Hint.Line)
}

// ParsePipLocation extracts the "Location:" value from `pip show` output.
func ParsePipLocation(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Location:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// HintFor returns the startup file and PATH line for the shell at shellPath.
func HintFor(shellPath, home, bin string) PathHint {
	name := filepath.Base(shellPath)
	if shellPath == "" {
		name = "unknown"
	}
	export := fmt.Sprintf(`export PATH="%s:$PATH"`, bin)

	switch {
	case strings.Contains(name, "bash"):
		return PathHint{Shell: name, RCFile: filepath.Join(home, ".bashrc"), Line: export}
	case strings.Contains(name, "zsh"):
		return PathHint{Shell: name, RCFile: filepath.Join(home, ".zshrc"), Line: export}
	case strings.Contains(name, "fish"):
		return PathHint{
			Shell:  name,
			RCFile: filepath.Join(home, ".config", "fish", "config.fish"),
			Line:   fmt.Sprintf(`set -gx PATH "%s" $PATH`, bin),
		}
	default:
		return PathHint{Shell: name, RCFile: filepath.Join(home, ".profile"), Line: export}
	}
}
