package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "stdinmute",
	Short: "Inspect and demo terminal input suppression",
	Long: `Utilities around suppressed standard input.

While a spinner or progress indicator runs, keystrokes normally echo into
the output and corrupt it. The stdinmute library swallows them but keeps
Ctrl+C working; these commands demonstrate and troubleshoot that behavior.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
