package actions

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/ruminaider/konsave-menu/internal/profiles"
	"github.com/ruminaider/konsave-menu/internal/runner"
)

type resyncPolicy int

const (
	resyncNever resyncPolicy = iota
	resyncOnSuccess
	resyncAfterInvoke
	resyncAlways
)

// plan is the static description of an action.
type plan struct {
	needsProfile bool
	warnTitle    string
	noProfile    string // warning shown when needsProfile is unmet
	resync       resyncPolicy
	prepare      func(d *Dispatcher, req Request) (task, error)
}

// task is a prepared invocation with its inputs resolved.
type task struct {
	confirmTitle string
	confirm      string // empty skips confirmation
	label        string // busy indicator; empty runs without one
	failTitle    string
	invoke       func() (string, error)
	after        func() // runs only after a successful invoke
}

var plans = map[ID]plan{
	Save: {
		warnTitle: "Invalid Name",
		resync:    resyncAlways,
		prepare:   (*Dispatcher).prepareSave,
	},
	Import: {
		warnTitle: "Import Failed",
		resync:    resyncAfterInvoke,
		prepare:   (*Dispatcher).prepareImport,
	},
	Export: {
		needsProfile: true,
		warnTitle:    "No Profile Selected",
		noProfile:    "Please select a valid profile to export.",
		resync:       resyncNever,
		prepare:      (*Dispatcher).prepareExport,
	},
	Load: {
		needsProfile: true,
		warnTitle:    "No Profile Selected",
		noProfile:    "Please select a valid profile to load.",
		resync:       resyncNever,
		prepare:      (*Dispatcher).prepareLoad,
	},
	Delete: {
		needsProfile: true,
		warnTitle:    "Cannot Delete",
		noProfile:    "Select a valid profile to delete.",
		resync:       resyncAfterInvoke,
		prepare:      (*Dispatcher).prepareDelete,
	},
	Rename: {
		needsProfile: true,
		warnTitle:    "Invalid Profile",
		noProfile:    "Select a valid profile to rename.",
		resync:       resyncOnSuccess,
		prepare:      (*Dispatcher).prepareRename,
	},
	OpenFolder: {
		resync:  resyncNever,
		prepare: (*Dispatcher).prepareOpenFolder,
	},
	Refresh: {
		resync:  resyncAlways,
		prepare: func(*Dispatcher, Request) (task, error) { return task{}, nil },
	},
}

// titledError carries the heading for a validation warning.
type titledError struct {
	title string
	err   error
}

func titled(title string, err error) error {
	return &titledError{title: title, err: err}
}

func (e *titledError) Error() string { return e.err.Error() }
func (e *titledError) Unwrap() error { return e.err }

// input returns the pre-supplied value or asks for one.
func (d *Dispatcher) input(req Request, title, prompt, initial string) (string, error) {
	if req.Input != "" {
		return strings.TrimSpace(req.Input), nil
	}
	v, err := d.prompt.Input(title, prompt, initial)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (d *Dispatcher) prepareSave(req Request) (task, error) {
	name := req.Selected
	overwrite := profiles.IsReal(name)

	t := task{failTitle: "Command Failed"}
	if overwrite {
		t.confirmTitle = "Overwrite Profile"
		t.confirm = fmt.Sprintf("Overwrite profile '%s'?", name)
	} else {
		var err error
		name, err = d.input(req, "Save New Profile", "Enter profile name:", "")
		if err != nil {
			return task{}, err
		}
		if name == "" {
			return task{}, ErrEmptyName
		}
		if err := profiles.ValidateName(name); err != nil {
			return task{}, err
		}
	}

	args := []string{"-s", name}
	if overwrite {
		args = append(args, "-f")
	}
	t.label = d.label(args...)
	t.invoke = d.toolCall(func() runner.Result { return d.tool.Save(name, overwrite) })
	return t, nil
}

func (d *Dispatcher) prepareImport(req Request) (task, error) {
	path := strings.TrimSpace(req.Input)
	if path == "" {
		var err error
		path, err = d.prompt.OpenFile(fmt.Sprintf("Import %s File", d.ext), d.home, d.ext)
		if err != nil {
			return task{}, err
		}
		path = strings.TrimSpace(path)
	}
	if path == "" {
		return task{}, ErrCancelled
	}
	path = paths.ExpandTilde(d.home, path)

	return task{
		label:     d.label("-i", path),
		failTitle: "Command Failed",
		invoke:    d.toolCall(func() runner.Result { return d.tool.Import(path) }),
	}, nil
}

func (d *Dispatcher) prepareExport(req Request) (task, error) {
	name := req.Selected
	dest, err := d.input(req, fmt.Sprintf("Export %s File", d.ext), "Destination:", name+d.ext)
	if err != nil {
		return task{}, err
	}
	if dest == "" {
		return task{}, ErrCancelled
	}
	dest = profiles.StripArchiveExt(paths.ExpandTilde(d.home, dest), d.ext)
	// ".knsv" or "dir/.knsv" leave no file name
	if dest == "" || strings.HasSuffix(dest, string(filepath.Separator)) {
		return task{}, titled("Invalid Name", ErrEmptyName)
	}

	return task{
		label:     d.label("-e", name, "-n", dest),
		failTitle: "Command Failed",
		invoke:    d.toolCall(func() runner.Result { return d.tool.Export(name, dest) }),
	}, nil
}

func (d *Dispatcher) prepareLoad(req Request) (task, error) {
	name := req.Selected
	return task{
		label:     d.label("-a", name),
		failTitle: "Command Failed",
		invoke:    d.toolCall(func() runner.Result { return d.tool.Apply(name) }),
		after: func() {
			d.prompt.Notify(LevelInfo, "KDE Reload Required",
				"Profile applied successfully.\nPlease log out and log back in to see the changes completely.")
		},
	}, nil
}

func (d *Dispatcher) prepareDelete(req Request) (task, error) {
	name := req.Selected
	return task{
		confirmTitle: "Delete Profile",
		confirm:      fmt.Sprintf("Are you sure you want to delete '%s'?", name),
		label:        d.label("-r", name),
		failTitle:    "Command Failed",
		invoke:       d.toolCall(func() runner.Result { return d.tool.Remove(name) }),
	}, nil
}

func (d *Dispatcher) prepareRename(req Request) (task, error) {
	oldName := req.Selected
	newName, err := d.input(req, "Rename Profile", "Enter new profile name:", "")
	if err != nil {
		return task{}, err
	}
	switch {
	case newName == "":
		return task{}, titled("Invalid Name", ErrEmptyName)
	case newName == oldName:
		return task{}, titled("Same Name", ErrSameName)
	}
	if err := profiles.ValidateName(newName); err != nil {
		return task{}, titled("Invalid Name", err)
	}

	return task{
		failTitle: "Rename Failed",
		invoke: func() (string, error) {
			if err := profiles.Rename(d.profilesDir, oldName, newName); err != nil {
				return "", err
			}
			d.log.Info("profile renamed", "from", oldName, "to", newName)
			return fmt.Sprintf("Renamed '%s' to '%s' successfully.", oldName, newName), nil
		},
	}, nil
}

func (d *Dispatcher) prepareOpenFolder(Request) (task, error) {
	return task{
		failTitle: "Open Folder Failed",
		invoke: func() (string, error) {
			if d.opener == nil {
				return "", errors.New("no file manager configured")
			}
			return d.profilesDir, d.opener.OpenDir(d.profilesDir)
		},
	}, nil
}
