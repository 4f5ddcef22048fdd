package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/konsave-menu/cmd/konsave-menu/tui"
	"github.com/ruminaider/konsave-menu/internal/actions"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to list when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !interactive() {
		return listCmd.RunE(cmd, args)
	}

	a, err := newApp(cmd, formPrompter{})
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireTool(cmd); err != nil {
		return err
	}

	toolVersion := a.tool.Version()
	listing := a.actions.Refresh()
	status := ""
	focus := ""

	for {
		model := tui.NewProfilesModel(listing)
		model.Version = toolVersion
		model.SetStatus(status)
		model.Focus(focus)

		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menu := finalModel.(tui.ProfilesModel)
		if menu.Quitting || menu.Selected.Action == "" {
			return nil
		}

		sel := menu.Selected
		a.log.Debug("menu action", "action", sel.Action, "selected", sel.Profile)

		out := a.actions.Do(actions.Request{
			ID:       sel.Action,
			Selected: sel.Profile,
			Yes:      assumeYes,
		})
		if out.Listing != nil {
			listing = *out.Listing
		}
		status = statusLine(out)
		focus = sel.Profile
	}
}

// statusLine condenses an outcome into the status bar text.
func statusLine(out actions.Outcome) string {
	switch {
	case out.Cancelled:
		return "Cancelled."
	case out.Status != "":
		return out.Status
	case out.Err != nil:
		return "Aborted: " + out.Err.Error()
	}
	return ""
}
