package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/nt-publish/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [jq-expression]",
	Short: "Show the current settings",
	Long: `Show the current settings with the password masked.

An optional jq expression filters the output. Ex:

  nt-publish config .serverApi
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := loadSettings()
		expr := "."
		if len(args) == 1 {
			expr = args[0]
		}
		return printSettings(os.Stdout, s, expr)
	},
}

func printSettings(w io.Writer, s *settings.Settings, expr string) error {
	values, err := s.Query(expr)
	if err != nil {
		return err
	}
	for _, value := range values {
		if text, ok := value.(string); ok {
			fmt.Fprintln(w, text)
			continue
		}
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	}
	return nil
}
