package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-publish/internal/logger"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var settingsPath string

// errSilent is returned by commands that already reported the error to the user.
var errSilent = errors.New("silent error")

var rootCmd = &cobra.Command{
	Use:   "nt-publish",
	Short: "nt-publish publishes Markdown documents using a remote workflow",
	Long:  `Upload a Markdown document to the publishing service and open the generated PDF.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passsed.
		if verboseInfo {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseInfo)
		}
		if verboseDebug {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseDebug)
		}
		if verboseTrace {
			logger.CurrentLogger().SetVerboseLevel(logger.VerboseTrace)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "settings file (default $NT_PUBLISH_SETTINGS or ./settings.json)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// fail prints the error and exits.
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
