// Package konsave maps profile operations onto the konsave command line.
package konsave

import (
	"path/filepath"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/runner"
)

// DefaultBinary is the tool invoked when none is configured.
const DefaultBinary = "konsave"

// UnknownVersion is reported when the tool cannot tell its version.
const UnknownVersion = "Konsave: unknown version"

// Client invokes the external profile tool.
type Client struct {
	run runner.Runner
	bin string
}

// New returns a client that runs bin through run.
func New(run runner.Runner, bin string) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{run: run, bin: bin}
}

// Binary returns the configured command.
func (c *Client) Binary() string {
	return c.bin
}

// Name returns the tool's base name, used to recognize its banner lines.
func (c *Client) Name() string {
	return filepath.Base(c.bin)
}

// List runs the listing command.
func (c *Client) List() runner.Result {
	return c.run.Run(c.bin, "-l")
}

// Save snapshots the current configuration as name. force overwrites an
// existing profile.
func (c *Client) Save(name string, force bool) runner.Result {
	args := []string{"-s", name}
	if force {
		args = append(args, "-f")
	}
	return c.run.Run(c.bin, args...)
}

// Import reads a profile archive.
func (c *Client) Import(path string) runner.Result {
	return c.run.Run(c.bin, "-i", path)
}

// Export writes name to an archive at dest; the tool appends the extension.
func (c *Client) Export(name, dest string) runner.Result {
	return c.run.Run(c.bin, "-e", name, "-n", dest)
}

// Apply loads name into the running session.
func (c *Client) Apply(name string) runner.Result {
	return c.run.Run(c.bin, "-a", name)
}

// Remove deletes name.
func (c *Client) Remove(name string) runner.Result {
	return c.run.Run(c.bin, "-r", name)
}

// Version returns the first line the tool prints for --version.
func (c *Client) Version() string {
	res := c.run.Run(c.bin, "--version")
	if res.Failed() {
		return UnknownVersion
	}
	v := strings.TrimSpace(res.Stdout)
	if i := strings.IndexByte(v, '\n'); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if v == "" {
		return UnknownVersion
	}
	return v
}
