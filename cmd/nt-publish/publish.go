package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-publish/internal/document"
	"github.com/julien-sobczak/nt-publish/internal/publish"
	"github.com/julien-sobczak/nt-publish/internal/submission"
	"github.com/julien-sobczak/nt-publish/internal/ui"
)

var workflowID string
var force bool
var noOpen bool
var noSpinner bool
var extensions []string

func init() {
	publishCmd.Flags().StringVarP(&workflowID, "workflow", "w", "", "workflow to run instead of the one defined in settings")
	publishCmd.Flags().BoolVarP(&force, "force", "f", false, "publish even if the document is not a Markdown file")
	publishCmd.Flags().BoolVarP(&noOpen, "no-open", "", false, "print the output URL instead of opening the browser")
	publishCmd.Flags().BoolVarP(&noSpinner, "no-spinner", "", false, "disable the animated spinner")
	publishCmd.Flags().StringSliceVarP(&extensions, "ext", "", document.DefaultExtensions, "extensions of Markdown documents")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:     "publish <file>",
	Aliases: []string{"run"},
	Short:   "Publish a Markdown document",
	Long: fmt.Sprintf(`Upload the document with a workflow override and open the generated output.

The PDF output is preferred when the workflow produces several outputs.
Editor integrations bind this command as %q (%s, %s).`, publish.CommandDisplayName, publish.CommandID, publish.CommandKeyBinding),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("unable to publish %s: %w", path, err)
		}
		if !force {
			if err := document.CheckMarkdown(path, extensions); err != nil {
				return fmt.Errorf("%w (use --force to publish anyway)", err)
			}
		}

		console := newConsole(path)
		// Printed once the status line is cleared
		var pending bytes.Buffer
		var opener publish.Opener = ui.BrowserOpener{}
		if noOpen {
			opener = ui.URLPrinter{Output: &pending}
		}

		var options []publish.Option
		if workflowID != "" {
			options = append(options, publish.WithWorkflow(workflowID))
		}
		orchestrator := publish.NewOrchestrator(
			currentSettingsStore(),
			document.NewFileProvider(path),
			submission.NewClient(nil),
			console,
			opener,
			options...,
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := orchestrator.Run(ctx)
		if err != nil {
			// Already reported by the console
			return errSilent
		}
		if noOpen {
			fmt.Print(pending.String())
			return nil
		}
		console.Success("Opened %s", result.Output)
		return nil
	},
}

func newConsole(path string) *ui.Console {
	label := fmt.Sprintf("Publishing %s...", document.NewFileProvider(path).CurrentDocumentName())
	var options []ui.ConsoleOption
	if !noSpinner && isatty.IsTerminal(os.Stdout.Fd()) {
		options = append(options, ui.WithSpinner(ui.NewSpinner(os.Stdout)))
	}
	return ui.NewConsole(label, options...)
}
