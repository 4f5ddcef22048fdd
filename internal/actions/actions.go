// Package actions turns user actions into external tool invocations. Every
// action follows the same sequence: validate, gather input, confirm, invoke,
// then resynchronize the profile list or report the failure.
package actions

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/konsave"
	"github.com/ruminaider/konsave-menu/internal/profiles"
	"github.com/ruminaider/konsave-menu/internal/runner"
)

// ID names an action. The values double as CLI verbs and menu identifiers.
type ID string

const (
	Save       ID = "save"
	Import     ID = "import"
	Export     ID = "export"
	Load       ID = "load"
	Delete     ID = "delete"
	Rename     ID = "rename"
	OpenFolder ID = "open-folder"
	Refresh    ID = "refresh"
)

// All returns every action ID. Every ID here must have a plan.
func All() []ID {
	return []ID{Save, Import, Export, Load, Delete, Rename, OpenFolder, Refresh}
}

var (
	ErrNoProfile     = errors.New("no profile selected")
	ErrEmptyName     = errors.New("profile name is empty")
	ErrSameName      = profiles.ErrSameName
	ErrCancelled     = errors.New("cancelled")
	ErrUnknownAction = errors.New("unknown action")
)

// Level is the severity of a user-visible notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Prompter is the interactive surface. Prompts return ErrCancelled when the
// user backs out. Notify blocks until the user has seen the message.
type Prompter interface {
	Confirm(title, message string) (bool, error)
	Input(title, prompt, initial string) (string, error)
	OpenFile(title, dir, ext string) (string, error)
	Notify(level Level, title, message string)
	Busy(label string, fn func())
}

// FolderOpener shows a directory in the platform file manager.
type FolderOpener interface {
	OpenDir(dir string) error
}

// Request is one user-initiated action. Input pre-supplies the name or path
// that would otherwise be prompted for; Yes answers confirmations.
type Request struct {
	ID       ID
	Selected string
	Input    string
	Yes      bool
}

// Outcome is what the front-end needs after an action.
type Outcome struct {
	Status    string            // transient status line
	Listing   *profiles.Listing // non-nil when the list was resynchronized
	Err       error             // already shown to the user
	Cancelled bool
}

// Options configures a Dispatcher.
type Options struct {
	Tool          *konsave.Client
	Prompter      Prompter
	Opener        FolderOpener
	Home          string
	ProfilesDir   string
	ArchiveExt    string
	SurfaceStderr bool
	Log           *slog.Logger
}

// Dispatcher runs actions against the external tool.
type Dispatcher struct {
	tool          *konsave.Client
	prompt        Prompter
	opener        FolderOpener
	home          string
	profilesDir   string
	ext           string
	surfaceStderr bool
	log           *slog.Logger
}

// New returns a Dispatcher.
func New(o Options) *Dispatcher {
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.ArchiveExt == "" {
		o.ArchiveExt = ".knsv"
	}
	return &Dispatcher{
		tool:          o.Tool,
		prompt:        o.Prompter,
		opener:        o.Opener,
		home:          o.Home,
		profilesDir:   o.ProfilesDir,
		ext:           o.ArchiveExt,
		surfaceStderr: o.SurfaceStderr,
		log:           o.Log,
	}
}

// ProfilesDir returns the profiles root.
func (d *Dispatcher) ProfilesDir() string {
	return d.profilesDir
}

// Refresh rebuilds the profile list from the tool's listing. Failures are
// logged, never surfaced; the result falls back to the placeholder.
func (d *Dispatcher) Refresh() profiles.Listing {
	res := d.tool.List()
	if err := res.Error(); err != nil {
		d.log.Warn("listing profiles failed", "cmd", res.String(), "err", err)
	} else if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		d.log.Warn("listing wrote to stderr", "cmd", res.String(), "stderr", stderr)
	}
	return profiles.NewListing(profiles.ParseList(res.Stdout, d.tool.Name()))
}

// Do runs one action to completion.
func (d *Dispatcher) Do(req Request) Outcome {
	p, ok := plans[req.ID]
	if !ok {
		return Outcome{Err: fmt.Errorf("%w: %s", ErrUnknownAction, req.ID)}
	}

	out, invoked := d.execute(p, req)

	switch {
	case p.resync == resyncAlways,
		p.resync == resyncAfterInvoke && invoked,
		p.resync == resyncOnSuccess && invoked && out.Err == nil:
		l := d.Refresh()
		out.Listing = &l
	}
	return out
}

// execute walks validate, prepare, confirm and invoke. invoked reports
// whether the action reached its side effect.
func (d *Dispatcher) execute(p plan, req Request) (out Outcome, invoked bool) {
	if p.needsProfile && !profiles.IsReal(req.Selected) {
		return d.warn(p.warnTitle, p.noProfile, ErrNoProfile), false
	}

	t, err := p.prepare(d, req)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return Outcome{Cancelled: true}, false
		}
		title := p.warnTitle
		var te *titledError
		if errors.As(err, &te) {
			title = te.title
		}
		return d.warn(title, "", err), false
	}

	if t.confirm != "" && !req.Yes {
		ok, err := d.prompt.Confirm(t.confirmTitle, t.confirm)
		if err != nil && !errors.Is(err, ErrCancelled) {
			return d.fail("Error", err), false
		}
		if !ok || err != nil {
			return Outcome{Cancelled: true}, false
		}
	}

	if t.invoke == nil {
		return Outcome{}, false
	}

	var status string
	run := func() { status, err = t.invoke() }
	if t.label != "" {
		d.prompt.Busy(t.label, run)
	} else {
		run()
	}
	if err != nil {
		return d.fail(t.failTitle, err), true
	}

	if t.after != nil {
		t.after()
	}
	if status == "" {
		status = "Done!"
	}
	return Outcome{Status: status}, true
}

// warn reports a validation failure. An empty message uses err's text.
func (d *Dispatcher) warn(title, message string, err error) Outcome {
	if message == "" {
		message = capitalize(err.Error()) + "."
	}
	d.log.Info("action rejected", "reason", err)
	d.prompt.Notify(LevelWarning, title, message)
	return Outcome{Err: err}
}

// fail reports an error from the invocation itself.
func (d *Dispatcher) fail(title string, err error) Outcome {
	d.log.Error("action failed", "title", title, "err", err)
	d.prompt.Notify(LevelError, title, err.Error())
	return Outcome{Status: "Command failed", Err: err}
}

// toolCall adapts a tool invocation into a task's invoke step. Stderr on a
// successful run is logged and, when configured, appended to the status.
func (d *Dispatcher) toolCall(call func() runner.Result) func() (string, error) {
	return func() (string, error) {
		res := call()
		d.log.Debug("command finished", "cmd", res.String(), "exit", res.ExitCode)

		stderr := strings.TrimSpace(res.Stderr)
		if err := res.Error(); err != nil {
			return "", err
		}
		status := res.LastLine()
		if stderr != "" {
			d.log.Warn("command wrote to stderr", "cmd", res.String(), "stderr", stderr)
			if d.surfaceStderr {
				warning := "warning: " + runner.Result{Stdout: stderr}.LastLine()
				if status == "" {
					status = warning
				} else {
					status += " (" + warning + ")"
				}
			}
		}
		return status, nil
	}
}

// label renders the busy indicator text for a tool invocation.
func (d *Dispatcher) label(args ...string) string {
	return "Running: " + runner.Result{Command: d.tool.Binary(), Args: args}.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
