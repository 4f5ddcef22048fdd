package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Persistent flags.
var (
	configFile  string
	verbose     bool
	assumeYes   bool
	toolFlag    string
	profilesDir string
)

var rootCmd = &cobra.Command{
	Use:           "konsave-menu",
	Short:         "Interactive front-end for konsave profiles",
	Long:          "konsave-menu lists, saves, loads, imports, exports, renames and deletes konsave profiles from a terminal menu.",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "konsave-menu %s\n", version)

		a, err := newApp(cmd, consolePrompter{})
		if err != nil {
			return err
		}
		defer a.close()
		if st := a.checkTool(); st.Found {
			fmt.Fprintln(cmd.OutOrStdout(), a.tool.Version())
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ~/.config/konsave-menu/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	pf.BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmations")
	pf.StringVar(&toolFlag, "tool", "", "profile tool executable (default konsave)")
	pf.StringVar(&profilesDir, "profiles-dir", "", "profiles root (default ~/.config/konsave/profiles)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// reportedError marks an error the user has already seen.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var r reportedError
		if !errors.As(err, &r) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
