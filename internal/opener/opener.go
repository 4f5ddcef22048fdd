// Package opener shows a directory in the desktop file manager.
package opener

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"

	"github.com/godbus/dbus/v5"
)

const (
	fileManagerDest   = "org.freedesktop.FileManager1"
	fileManagerPath   = dbus.ObjectPath("/org/freedesktop/FileManager1")
	fileManagerMethod = "org.freedesktop.FileManager1.ShowFolders"
)

// Opener asks the session's file manager to show a folder, falling back to a
// launcher command such as xdg-open.
type Opener struct {
	Fallback string
	Log      *slog.Logger

	// Overridable for tests.
	ShowFolders func(uri string) error
	Start       func(name string, args ...string) error
}

// New returns an Opener using D-Bus first and fallback second.
func New(fallback string, log *slog.Logger) *Opener {
	if fallback == "" {
		fallback = "xdg-open"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Opener{
		Fallback:    fallback,
		Log:         log,
		ShowFolders: showFoldersDBus,
		Start:       startDetached,
	}
}

// OpenDir opens dir. A missing directory is silently ignored; nothing is
// reported back once a launcher has been started.
func (o *Opener) OpenDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		o.Log.Debug("open folder skipped", "dir", dir)
		return nil
	}

	uri := (&url.URL{Scheme: "file", Path: dir}).String()
	if o.ShowFolders != nil {
		err := o.ShowFolders(uri)
		if err == nil {
			return nil
		}
		o.Log.Debug("FileManager1 unavailable, using fallback", "err", err, "fallback", o.Fallback)
	}

	if err := o.Start(o.Fallback, dir); err != nil {
		return fmt.Errorf("opening %s with %s: %w", dir, o.Fallback, err)
	}
	return nil
}

func showFoldersDBus(uri string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object(fileManagerDest, fileManagerPath)
	return obj.Call(fileManagerMethod, 0, []string{uri}, "").Err
}

func startDetached(name string, args ...string) error {
	_, err := launch(name, args...)
	return err
}

// launch starts name without waiting for it. The process is reaped in the
// background; its exit status arrives on the returned channel.
func launch(name string, args ...string) (<-chan error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
