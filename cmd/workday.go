package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/holidayapi/format"
)

var (
	workdayCountry string
	workdayStart   string
	workdayDays    int
	workdayEnd     string
)

// workdayCmd represents the workday command
var workdayCmd = &cobra.Command{
	Use:   "workday",
	Short: "Find the working day a number of working days after a date",
	Args:  cobra.NoArgs,
	RunE:  runWorkday,
}

// workdaysCmd represents the workdays command
var workdaysCmd = &cobra.Command{
	Use:   "workdays",
	Short: "Count the working days between two dates",
	Args:  cobra.NoArgs,
	RunE:  runWorkdays,
}

func init() {
	rootCmd.AddCommand(workdayCmd)
	rootCmd.AddCommand(workdaysCmd)

	workdayCmd.Flags().StringVarP(&workdayCountry, "country", "c", "", "country or subdivision code")
	workdayCmd.Flags().StringVar(&workdayStart, "start", "", "start date (YYYY-MM-DD)")
	workdayCmd.Flags().IntVar(&workdayDays, "days", 0, "number of working days to advance")
	_ = workdayCmd.MarkFlagRequired("country")
	_ = workdayCmd.MarkFlagRequired("start")
	_ = workdayCmd.MarkFlagRequired("days")

	workdaysCmd.Flags().StringVarP(&workdayCountry, "country", "c", "", "country or subdivision code")
	workdaysCmd.Flags().StringVar(&workdayStart, "start", "", "start date (YYYY-MM-DD)")
	workdaysCmd.Flags().StringVar(&workdayEnd, "end", "", "end date (YYYY-MM-DD)")
	_ = workdaysCmd.MarkFlagRequired("country")
	_ = workdaysCmd.MarkFlagRequired("start")
	_ = workdaysCmd.MarkFlagRequired("end")
}

func runWorkday(cmd *cobra.Command, args []string) error {
	if err := parseDateFlag("start", workdayStart); err != nil {
		return err
	}
	if workdayDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", workdayDays)
	}

	req := client.Workday(workdayCountry, workdayStart, workdayDays)

	ctx := cmd.Context()
	if rawOutput {
		body, err := req.GetRaw(ctx)
		if err != nil {
			return err
		}
		return printRaw(cmd, body)
	}

	result, err := req.Get(ctx)
	if err != nil {
		return err
	}

	return render(cmd, result, func(f *format.ConsoleFormatter) string {
		return f.FormatWorkday(workdayCountry, workdayStart, workdayDays, result)
	})
}

func runWorkdays(cmd *cobra.Command, args []string) error {
	if err := parseDateFlag("start", workdayStart); err != nil {
		return err
	}
	if err := parseDateFlag("end", workdayEnd); err != nil {
		return err
	}

	req := client.Workdays(workdayCountry, workdayStart, workdayEnd)

	ctx := cmd.Context()
	if rawOutput {
		body, err := req.GetRaw(ctx)
		if err != nil {
			return err
		}
		return printRaw(cmd, body)
	}

	count, err := req.Get(ctx)
	if err != nil {
		return err
	}

	return render(cmd, map[string]int{"workdays": count}, func(f *format.ConsoleFormatter) string {
		return f.FormatWorkdays(workdayCountry, workdayStart, workdayEnd, count)
	})
}
