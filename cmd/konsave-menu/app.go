package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ruminaider/konsave-menu/internal/actions"
	"github.com/ruminaider/konsave-menu/internal/bootstrap"
	"github.com/ruminaider/konsave-menu/internal/config"
	"github.com/ruminaider/konsave-menu/internal/konsave"
	"github.com/ruminaider/konsave-menu/internal/logging"
	"github.com/ruminaider/konsave-menu/internal/opener"
	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/ruminaider/konsave-menu/internal/runner"
	"github.com/spf13/cobra"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	home     string
	cfg      config.Config
	log      *slog.Logger
	closeLog func() error
	run      runner.Runner
	tool     *konsave.Client
	actions  *actions.Dispatcher
}

func newApp(cmd *cobra.Command, prompt actions.Prompter) (*app, error) {
	home := paths.Home()
	cfg, err := config.Load(home, configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.Setup(logging.Options{
		Home:    home,
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Verbose: verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		log, closeLog = logging.Discard(), func() error { return nil }
	}

	// The tool runs from home; relative paths it receives resolve there.
	run := runner.Exec{Dir: home}
	tool := konsave.New(run, cfg.Tool)

	log.Debug("starting", "version", version, "cmd", cmd.CommandPath(), "tool", cfg.Tool)

	return &app{
		home:     home,
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		run:      run,
		tool:     tool,
		actions: actions.New(actions.Options{
			Tool:          tool,
			Prompter:      prompt,
			Opener:        opener.New(cfg.FileManager, log),
			Home:          home,
			ProfilesDir:   cfg.ResolvedProfilesDir(home),
			ArchiveExt:    cfg.ArchiveExt,
			SurfaceStderr: cfg.SurfaceStderr,
			Log:           log,
		}),
	}, nil
}

func (a *app) close() {
	if err := a.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing log: %v\n", err)
	}
}

func (a *app) checkTool() bootstrap.Status {
	st := bootstrap.NewChecker(a.run, a.home).Check(a.tool.Binary())
	if !st.Found {
		a.log.Warn("tool not found", "tool", st.Tool, "bin_dir", st.BinDir)
	}
	return st
}

// requireTool prints the bootstrap hint and fails when the tool is missing.
func (a *app) requireTool(cmd *cobra.Command) error {
	st := a.checkTool()
	if st.Found {
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), st.Message())
	return reported(fmt.Errorf("%s not found", st.Tool))
}
