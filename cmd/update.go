package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/holidayapi/config"
)

const defaultRepository = "s0up4200/holidayapi"

var (
	version   = "dev"
	buildTime = "unknown"

	updateRepository string
	checkOnly        bool
)

// SetVersion records the build information injected through ldflags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "holidayapi %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update holidayapi to the latest release",
	Long: `Check GitHub for the latest holidayapi release and replace the running
binary with it. Development builds cannot be updated.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeUpdate,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateRepository, "repository", defaultRepository, "GitHub repository (owner/name) to update from")
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

// initializeUpdate sets up logging without requiring an API key
func initializeUpdate(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})

	loaded, err := config.Load(cfgFile)
	if err != nil {
		logger.Debug().Err(err).Msg("No usable config, using update defaults")
		return nil
	}

	cfg = loaded
	logger = setupLogger(cfg.Logging)
	if !cmd.Flags().Changed("repository") && cfg.Update.Repository != "" {
		updateRepository = cfg.Update.Repository
	}
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update development build %q: %w", version, err)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	logger.Info().Str("repository", updateRepository).Str("current", current.String()).Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(updateRepository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s in %s", runtime.GOOS, runtime.GOARCH, updateRepository)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "✓ holidayapi %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "→ holidayapi %s is available (current %s)\n", latest.Version(), current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated holidayapi %s → %s\n", current, latest.Version())
	return nil
}
