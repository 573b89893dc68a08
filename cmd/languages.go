package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/holidayapi/format"
)

var (
	languagesLanguage string
	languagesSearch   string
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().StringVarP(&languagesLanguage, "language", "l", "", "return a single language by code")
	languagesCmd.Flags().StringVarP(&languagesSearch, "search", "s", "", "search languages by code or name")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	req := client.Languages()
	if languagesLanguage != "" {
		req = req.Language(languagesLanguage)
	}
	if languagesSearch != "" {
		req = req.Search(languagesSearch)
	}

	ctx := cmd.Context()
	if rawOutput {
		body, err := req.GetRaw(ctx)
		if err != nil {
			return err
		}
		return printRaw(cmd, body)
	}

	languages, err := req.Get(ctx)
	if err != nil {
		return err
	}

	return render(cmd, languages, func(f *format.ConsoleFormatter) string {
		return f.FormatLanguages(languages)
	})
}
