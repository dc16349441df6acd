package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"faultline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "faultline",
	Short: "Programming error classifier and root-cause analyzer",
	Long:  `Faultline reads broken code together with its error message, classifies the failure and explains the likely root cause with fix suggestions`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Bool("verbose", false, "log pipeline stages to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
