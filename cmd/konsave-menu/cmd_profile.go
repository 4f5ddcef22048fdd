package main

import (
	"fmt"

	"github.com/ruminaider/konsave-menu/internal/actions"
	"github.com/ruminaider/konsave-menu/internal/profiles"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List profiles",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, consolePrompter{})
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.requireTool(cmd); err != nil {
			return err
		}

		l := a.actions.Refresh()
		if len(l.Names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
			return nil
		}
		for _, name := range l.Names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the current configuration as a profile",
	Long:  "Save the current configuration. Saving under an existing name overwrites that profile after confirmation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(a *app) actions.Request {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return saveRequest(a.actions.Refresh(), name)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a profile archive",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			req := actions.Request{ID: actions.Import}
			if len(args) == 1 {
				req.Input = args[0]
			}
			return req
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <name> [dest]",
	Short: "Export a profile to an archive",
	Long:  "Export a profile. dest defaults to <name>.knsv in the home directory; a trailing archive extension is dropped because the tool adds its own.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			req := actions.Request{ID: actions.Export, Selected: args[0]}
			if len(args) == 2 {
				req.Input = args[1]
			}
			return req
		})
	},
}

var loadCmd = &cobra.Command{
	Use:     "load <name>",
	Aliases: []string{"apply"},
	Short:   "Apply a profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			return actions.Request{ID: actions.Load, Selected: args[0]}
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			return actions.Request{ID: actions.Delete, Selected: args[0]}
		})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <old> [new]",
	Short: "Rename a profile folder",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			req := actions.Request{ID: actions.Rename, Selected: args[0]}
			if len(args) == 2 {
				req.Input = args[1]
			}
			return req
		})
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the profiles folder in the file manager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, func(*app) actions.Request {
			return actions.Request{ID: actions.OpenFolder}
		})
	},
}

// runAction builds the app, checks the tool and dispatches one request.
func runAction(cmd *cobra.Command, build func(*app) actions.Request) error {
	a, err := newApp(cmd, newPrompter())
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireTool(cmd); err != nil {
		return err
	}

	req := build(a)
	req.Yes = assumeYes
	return printOutcome(cmd, a.actions.Do(req))
}

// printOutcome prints the status of a finished action. Errors were already
// shown by the prompter.
func printOutcome(cmd *cobra.Command, out actions.Outcome) error {
	if out.Err != nil {
		return reported(out.Err)
	}
	if line := statusLine(out); line != "" {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// saveRequest picks between saving a new profile and overwriting an existing
// one. An empty name prompts for one.
func saveRequest(l profiles.Listing, name string) actions.Request {
	if name != "" && l.Contains(name) {
		return actions.Request{ID: actions.Save, Selected: name}
	}
	return actions.Request{ID: actions.Save, Selected: profiles.NewProfileLabel, Input: name}
}
