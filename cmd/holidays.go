package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/holidayapi/filter"
	"github.com/s0up4200/holidayapi/format"
	"github.com/s0up4200/holidayapi/holidayapi"
)

// maxConcurrentCountries bounds the parallel holiday lookups
const maxConcurrentCountries = 4

var (
	holidaysCountries    string
	holidaysYear         int
	holidaysMonth        int
	holidaysDay          int
	holidaysPublic       bool
	holidaysSubdivisions bool
	holidaysSearch       string
	holidaysLanguage     string
	holidaysPrevious     bool
	holidaysUpcoming     bool
	filterExpr           string
	preset               string
)

// defaultPreset is applied when neither --filter nor --preset is given
const defaultPreset = "default"

// holidaysCmd represents the holidays command
var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List holidays for one or more countries",
	Long: `List the holidays of a year for one or more countries.

Several countries can be given as a comma-separated list; they are fetched
concurrently and merged in the order given. The result can be narrowed with
a filter expression evaluated against each holiday, e.g.

  holidayapi holidays --country us,ca --year 2024 --filter 'Public && !weekend()'

Named expressions can be kept under "filter" in the config file and selected
with --preset. A preset called "default" applies when no filter is given.`,
	Args: cobra.NoArgs,
	RunE: runHolidays,
}

func init() {
	rootCmd.AddCommand(holidaysCmd)

	holidaysCmd.Flags().StringVarP(&holidaysCountries, "country", "c", "", "country or subdivision code, comma-separated for several")
	holidaysCmd.Flags().IntVarP(&holidaysYear, "year", "y", time.Now().Year(), "year to list holidays for")
	holidaysCmd.Flags().IntVarP(&holidaysMonth, "month", "m", 0, "only holidays in this month (1-12)")
	holidaysCmd.Flags().IntVarP(&holidaysDay, "day", "d", 0, "only holidays on this day of the month (requires --month)")
	holidaysCmd.Flags().BoolVar(&holidaysPublic, "public", false, "only public holidays")
	holidaysCmd.Flags().BoolVar(&holidaysSubdivisions, "subdivisions", false, "include subdivision holidays")
	holidaysCmd.Flags().StringVarP(&holidaysSearch, "search", "s", "", "search holidays by name")
	holidaysCmd.Flags().StringVarP(&holidaysLanguage, "language", "l", "", "language code for holiday names")
	holidaysCmd.Flags().BoolVar(&holidaysPrevious, "previous", false, "holidays before the given date (requires --month and --day)")
	holidaysCmd.Flags().BoolVar(&holidaysUpcoming, "upcoming", false, "holidays after the given date (requires --month and --day)")
	holidaysCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
	holidaysCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	_ = holidaysCmd.MarkFlagRequired("country")
	holidaysCmd.MarkFlagsMutuallyExclusive("previous", "upcoming")
	holidaysCmd.MarkFlagsMutuallyExclusive("filter", "preset")
}

func runHolidays(cmd *cobra.Command, args []string) error {
	countries := splitCountries(holidaysCountries)
	if len(countries) == 0 {
		return fmt.Errorf("no country specified")
	}

	// Compile the filter before spending any requests
	holidayFilter, err := getHolidayFilter()
	if err != nil {
		return err
	}

	logger.Info().
		Strs("countries", countries).
		Int("year", holidaysYear).
		Msg("Fetching holidays")

	ctx := cmd.Context()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCountries)

	raws := make([]string, len(countries))
	results := make([][]holidayapi.Holiday, len(countries))

	for i, country := range countries {
		req := buildHolidaysRequest(cmd, country)
		g.Go(func() error {
			if rawOutput {
				body, err := req.GetRaw(gctx)
				if err != nil {
					return fmt.Errorf("%s: %w", country, err)
				}
				raws[i] = body
				return nil
			}

			holidays, err := req.Get(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", country, err)
			}
			logger.Debug().Str("country", country).Int("count", len(holidays)).Msg("Holidays fetched")
			results[i] = holidays
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if rawOutput {
		for _, body := range raws {
			if err := printRaw(cmd, body); err != nil {
				return err
			}
		}
		return nil
	}

	var merged []holidayapi.Holiday
	for _, holidays := range results {
		merged = append(merged, holidays...)
	}

	if holidayFilter != nil {
		merged, err = filter.Apply(ctx, holidayFilter, merged)
		if err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
		logger.Debug().Str("filter", holidayFilter.Expression()).Int("matches", len(merged)).Msg("Filter applied")
	}

	return render(cmd, merged, func(f *format.ConsoleFormatter) string {
		return f.FormatHolidays(merged)
	})
}

// getHolidayFilter determines the filter to use, if any
func getHolidayFilter() (filter.CompiledFilter, error) {
	if rawOutput {
		if filterExpr != "" || preset != "" {
			return nil, fmt.Errorf("filters cannot be combined with --raw")
		}
		return nil, nil
	}

	// Priority: command line filter > preset > default preset
	if filterExpr != "" {
		compiled, err := filter.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return compiled, nil
	}

	presets := filter.NewManager()
	if err := presets.RegisterFilters(cfg.Filter); err != nil {
		return nil, fmt.Errorf("invalid filter preset: %w", err)
	}

	if preset != "" {
		compiled, ok := presets.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config (available: %s)", preset, strings.Join(presets.ListFilters(), ", "))
		}
		return compiled, nil
	}

	if compiled, ok := presets.GetFilter(defaultPreset); ok {
		logger.Debug().Str("filter", compiled.Expression()).Msg("Using default filter preset")
		return compiled, nil
	}

	return nil, nil
}

func buildHolidaysRequest(cmd *cobra.Command, country string) holidayapi.HolidaysRequest {
	req := client.Holidays(country, holidaysYear)

	flags := cmd.Flags()
	if flags.Changed("month") {
		req = req.Month(holidaysMonth)
	}
	if flags.Changed("day") {
		req = req.Day(holidaysDay)
	}
	if flags.Changed("public") {
		req = req.Public(holidaysPublic)
	}
	if flags.Changed("subdivisions") {
		req = req.Subdivisions(holidaysSubdivisions)
	}
	if holidaysSearch != "" {
		req = req.Search(holidaysSearch)
	}
	if holidaysLanguage != "" {
		req = req.Language(holidaysLanguage)
	}
	if flags.Changed("previous") {
		req = req.Previous(holidaysPrevious)
	}
	if flags.Changed("upcoming") {
		req = req.Upcoming(holidaysUpcoming)
	}

	return req
}

// splitCountries splits a comma-separated list, dropping blanks and duplicates
func splitCountries(value string) []string {
	var countries []string
	seen := make(map[string]bool)
	for part := range strings.SplitSeq(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		countries = append(countries, part)
	}
	return countries
}
