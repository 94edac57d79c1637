package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-publish/internal/servlet"
	"github.com/julien-sobczak/nt-publish/internal/settings"
)

func init() {
	urlsCmd.Flags().StringVarP(&workflowID, "workflow", "w", "", "workflow to use instead of the one defined in settings")
	rootCmd.AddCommand(urlsCmd)
}

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Show the endpoints resolved from settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := loadSettings()
		if workflowID != "" {
			s = s.WithWorkflow(workflowID)
		}
		return printURLs(os.Stdout, s)
	},
}

func printURLs(w io.Writer, s *settings.Settings) error {
	workflowURL, err := servlet.WorkflowURL(s)
	if err != nil {
		return err
	}
	filesURL, err := servlet.FilesAPI(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "workflow: %s\n", workflowURL)
	fmt.Fprintf(w, "files:    %s\n", filesURL)
	return nil
}
