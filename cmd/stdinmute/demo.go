package main

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	stdinmute "github.com/grindlemire/go-stdinmute"
)

var (
	demoDuration        time.Duration
	demoHandleInterrupt bool
)

func init() {
	demoCmd.Flags().DurationVar(&demoDuration, "duration", 10*time.Second, "how long to keep the spinner running")
	demoCmd.Flags().BoolVar(&demoHandleInterrupt, "handle-interrupt", false, "register a SIGINT handler to exercise in-process delivery")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a spinner with keyboard input suppressed",
	Long: `Run a spinner for a while with standard input suppressed.

Type freely: nothing echoes. Ctrl+C still interrupts. Without
--handle-interrupt the process dies through the default signal action; with
it, a handler registered through the library's signal port catches the
interrupt and shuts down cleanly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stdinmute.Stdin().IsTerminal() {
			logrus.Warn("standard input is not a terminal; suppression will be a no-op")
		}

		interrupted := make(chan os.Signal, 1)
		if demoHandleInterrupt {
			stdinmute.DefaultSignals().Notify(interrupted, os.Interrupt)
			defer stdinmute.DefaultSignals().Stop(interrupted)
		}

		isPty := term.IsTerminal(int(os.Stdout.Fd()))
		var spin *spinner.Spinner
		if isPty {
			spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Color("cyan")
			spin.Suffix = " working, type away (Ctrl+C to interrupt)"
			spin.Start()
		}

		stdinmute.Start()
		defer stdinmute.Stop()

		timer := time.NewTimer(demoDuration)
		defer timer.Stop()

		select {
		case <-timer.C:
			if isPty {
				spin.Stop()
			}
			color.Green("done, terminal state restored")
			return nil
		case sig := <-interrupted:
			if isPty {
				spin.Stop()
			}
			color.Yellow("caught %v in process, shutting down cleanly", sig)
			return nil
		}
	},
}
