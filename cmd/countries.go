package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/holidayapi/format"
)

var (
	countriesCountry string
	countriesSearch  string
	countriesPublic  bool
)

// countriesCmd represents the countries command
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported countries",
	Long:  `List the countries Holiday API supports, optionally narrowed to a single country or a search term.`,
	Args:  cobra.NoArgs,
	RunE:  runCountries,
}

func init() {
	rootCmd.AddCommand(countriesCmd)

	countriesCmd.Flags().StringVarP(&countriesCountry, "country", "c", "", "return a single country by code")
	countriesCmd.Flags().StringVarP(&countriesSearch, "search", "s", "", "search countries by code or name")
	countriesCmd.Flags().BoolVar(&countriesPublic, "public", false, "only countries with public holidays")
}

func runCountries(cmd *cobra.Command, args []string) error {
	req := client.Countries()
	if countriesCountry != "" {
		req = req.Country(countriesCountry)
	}
	if countriesSearch != "" {
		req = req.Search(countriesSearch)
	}
	if cmd.Flags().Changed("public") {
		req = req.Public(countriesPublic)
	}

	ctx := cmd.Context()
	if rawOutput {
		body, err := req.GetRaw(ctx)
		if err != nil {
			return err
		}
		return printRaw(cmd, body)
	}

	countries, err := req.Get(ctx)
	if err != nil {
		return err
	}

	return render(cmd, countries, func(f *format.ConsoleFormatter) string {
		return f.FormatCountries(countries)
	})
}
