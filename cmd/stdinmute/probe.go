package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	stdinmute "github.com/grindlemire/go-stdinmute"
)

func init() {
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report input device and platform capabilities",
	Long: `Report what suppression would do in this environment.

Useful in bug reports: it shows whether standard input is an interactive
terminal, whether raw mode is available, and the current device state.`,
	Run: func(cmd *cobra.Command, args []string) {
		dev := stdinmute.Stdin()
		sigs := stdinmute.DefaultSignals()

		fmt.Printf("platform:              %s\n", sigs.Platform())
		fmt.Printf("pid:                   %d\n", sigs.Pid())
		printCap("interactive terminal", dev.IsTerminal())
		printCap("raw mode supported", dev.RawModeSupported())
		printCap("raw mode engaged", dev.IsRawMode())
		printCap("flow paused", dev.IsPaused())

		if dev.IsTerminal() && dev.RawModeSupported() {
			color.Green("suppression would engage here")
		} else {
			color.Yellow("suppression would be a no-op here")
		}
	},
}

func printCap(name string, ok bool) {
	state := color.RedString("no")
	if ok {
		state = color.GreenString("yes")
	}
	fmt.Printf("%-22s %s\n", name+":", state)
}
