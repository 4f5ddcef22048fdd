package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/konsave-menu/internal/logging"
	"github.com/ruminaider/konsave-menu/internal/paths"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that konsave is reachable and report the paths in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, consolePrompter{})
		if err != nil {
			return err
		}
		defer a.close()

		w := cmd.OutOrStdout()
		st := a.checkTool()

		fmt.Fprintf(w, "konsave-menu %s\n\n", version)
		fmt.Fprintln(w, st.Message())
		if st.Found {
			fmt.Fprintf(w, "Version: %s\n", a.tool.Version())
		}
		fmt.Fprintln(w)

		profilesDir := a.actions.ProfilesDir()
		fmt.Fprintf(w, "Config:   %s%s\n", configPath(), existsNote(configPath()))
		fmt.Fprintf(w, "Profiles: %s%s\n", profilesDir, existsNote(profilesDir))
		fmt.Fprintf(w, "Log:      %s\n", logPath(a.home, a.cfg.Log.File))

		if !st.Found {
			return reported(fmt.Errorf("%s not found", st.Tool))
		}
		return nil
	},
}

func existsNote(path string) string {
	if _, err := os.Stat(path); err != nil {
		return " (missing)"
	}
	return ""
}

func logPath(home, file string) string {
	if file != "" {
		return paths.Expand(home, file)
	}
	return filepath.Join(paths.LogDir(home), logging.FileName)
}
