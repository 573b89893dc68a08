package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/holidayapi/config"
	"github.com/s0up4200/holidayapi/format"
	"github.com/s0up4200/holidayapi/holidayapi"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *holidayapi.Client
	formatter *format.ConsoleFormatter

	// Global flags
	rawOutput    bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "holidayapi",
	Short: "Query holidays, countries and working days from Holiday API",
	Long: `holidayapi is a CLI for the Holiday API (https://holidayapi.com).

It looks up supported countries and languages, lists holidays for one or more
countries, and counts working days between dates. The API key is read from the
config file or the HOLIDAYAPI_API_KEY environment variable.`,
	PersistentPreRunE: initializeApp,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprint(os.Stderr, format.NewConsoleFormatter(isTerminal(os.Stderr)).FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "print the unmodified response body")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (table/json)")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Configuration is valid, errors from here on are not usage errors
	cmd.SilenceUsage = true

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		if outputFormat != "table" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	client, err = holidayapi.NewWithVersion(cfg.API.Key, cfg.API.Version,
		holidayapi.WithAPIRoot(cfg.API.Root),
		holidayapi.WithTimeout(cfg.API.Timeout),
		holidayapi.WithUserAgent(cfg.API.UserAgent),
		holidayapi.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	formatter = format.NewConsoleFormatter(cfg.Output.Color && isTerminal(os.Stdout))

	logger.Debug().Str("base_url", client.BaseURL()).Msg("Client initialized")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render writes v as JSON or as the table produced by table
func render(cmd *cobra.Command, v any, table func(*format.ConsoleFormatter) string) error {
	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return format.WriteJSON(out, v)
	}
	_, err := fmt.Fprint(out, table(formatter))
	return err
}

func printRaw(cmd *cobra.Command, body string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(body))
	return err
}

// parseDateFlag checks that value is a YYYY-MM-DD date
func parseDateFlag(name, value string) error {
	if _, err := time.Parse(holidayapi.DateLayout, value); err != nil {
		return fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return nil
}
