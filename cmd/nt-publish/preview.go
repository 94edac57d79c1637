package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-publish/internal/document"
	"github.com/julien-sobczak/nt-publish/internal/ui"
	"github.com/julien-sobczak/nt-publish/pkg/text"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a Markdown document locally without publishing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.NewFileProvider(args[0]).CurrentDocument()
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no document found at %s", args[0])
		}

		path, err := writePreview(os.TempDir(), doc)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return ui.BrowserOpener{}.OpenFile(path)
	},
}

// writePreview renders the document as HTML inside dir.
func writePreview(dir string, doc *document.Document) (string, error) {
	html, err := document.ToHTML(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "nt-publish-"+text.TrimExtension(doc.Name)+".html")
	if err := os.WriteFile(path, html, 0644); err != nil {
		return "", err
	}
	return path, nil
}
