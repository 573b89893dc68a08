package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/holidayapi/config"
	"github.com/s0up4200/holidayapi/holidayapi"
	"github.com/s0up4200/holidayapi/internal/fakeapi"
)

const testKey = "00000000-0000-0000-0000-000000000000"

func writeTestConfig(t *testing.T, key, root string, extra ...string) string {
	t.Helper()
	content := "api:\n" +
		"  key: " + key + "\n" +
		"  root: " + root + "\n" +
		"output:\n" +
		"  color: false\n" +
		"logging:\n" +
		"  level: error\n" +
		strings.Join(extra, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// resetFlags restores every flag to its default so runs do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, srv *fakeapi.Server, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, writeTestConfig(t, testKey, srv.URL), args...)
}

func executeWithConfig(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeJSON[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCountriesCommand(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	t.Run("table", func(t *testing.T) {
		out, err := executeCommand(t, srv, "countries", "--country", "jp")
		require.NoError(t, err)
		assert.Contains(t, out, "Country (1):")
		assert.Contains(t, out, "╰── JP Japan")
		assert.Equal(t, "/v1/countries", srv.LastPath())
		assert.Equal(t, "jp", srv.LastQuery().Get("country"))
		assert.False(t, srv.LastQuery().Has("public"))
	})

	t.Run("public flag is only sent when set", func(t *testing.T) {
		_, err := executeCommand(t, srv, "countries", "--public")
		require.NoError(t, err)
		assert.Equal(t, "true", srv.LastQuery().Get("public"))
		assert.False(t, srv.LastQuery().Has("country"))
	})

	t.Run("raw", func(t *testing.T) {
		out, err := executeCommand(t, srv, "countries", "--raw")
		require.NoError(t, err)

		body := decodeJSON[map[string]any](t, out)
		assert.Contains(t, body, "countries")
		assert.EqualValues(t, 200, body["status"])
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCommand(t, srv, "countries", "-o", "json")
		require.NoError(t, err)

		countries := decodeJSON[[]holidayapi.Country](t, out)
		require.Len(t, countries, 1)
		assert.Equal(t, "JPN", countries[0].Codes.Alpha3)
	})
}

func TestHolidaysCommand(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	t.Run("several countries keep their order", func(t *testing.T) {
		before := srv.RequestCount()

		out, err := executeCommand(t, srv, "holidays", "--country", "us, jp,US", "--year", "2024", "--month", "3", "-o", "json")
		require.NoError(t, err)

		holidays := decodeJSON[[]holidayapi.Holiday](t, out)
		require.Len(t, holidays, 2)
		assert.Equal(t, "US", holidays[0].Country)
		assert.Equal(t, "JP", holidays[1].Country)
		assert.Equal(t, "2024-03-01", holidays[0].Date)
		assert.Equal(t, fakeapi.HolidayUUID, holidays[0].UUID)
		assert.Equal(t, 2, srv.RequestCount()-before)
	})

	t.Run("table", func(t *testing.T) {
		out, err := executeCommand(t, srv, "holidays", "--country", "jp", "--year", "2021", "--public")
		require.NoError(t, err)
		assert.Contains(t, out, "Holiday (1):")
		assert.Contains(t, out, "2021-01-01 Founding Day")
		assert.Equal(t, "2021", srv.LastQuery().Get("year"))
		assert.Equal(t, "true", srv.LastQuery().Get("public"))
	})

	t.Run("explicit zero month is sent", func(t *testing.T) {
		_, err := executeCommand(t, srv, "holidays", "--country", "jp", "--year", "2024", "--month", "0", "--day", "0")
		require.NoError(t, err)
		assert.Equal(t, "0", srv.LastQuery().Get("month"))
		assert.Equal(t, "0", srv.LastQuery().Get("day"))
	})

	t.Run("month and day are omitted when not given", func(t *testing.T) {
		_, err := executeCommand(t, srv, "holidays", "--country", "jp", "--year", "2024")
		require.NoError(t, err)
		assert.False(t, srv.LastQuery().Has("month"))
		assert.False(t, srv.LastQuery().Has("day"))
	})

	t.Run("filter", func(t *testing.T) {
		out, err := executeCommand(t, srv, "holidays", "--country", "us,jp", "--year", "2024", "--filter", `Country == "JP"`, "-o", "json")
		require.NoError(t, err)

		holidays := decodeJSON[[]holidayapi.Holiday](t, out)
		require.Len(t, holidays, 1)
		assert.Equal(t, "JP", holidays[0].Country)
	})

	t.Run("invalid filter sends no requests", func(t *testing.T) {
		before := srv.RequestCount()

		_, err := executeCommand(t, srv, "holidays", "--country", "us", "--filter", "Name ==")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid filter expression")
		assert.Equal(t, before, srv.RequestCount())
	})

	t.Run("filter with raw", func(t *testing.T) {
		_, err := executeCommand(t, srv, "holidays", "--country", "us", "--raw", "--filter", "Public")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "filters cannot be combined with --raw")
	})

	t.Run("country is required", func(t *testing.T) {
		_, err := executeCommand(t, srv, "holidays", "--year", "2024")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "country" not set`)
	})

	t.Run("previous and upcoming are exclusive", func(t *testing.T) {
		_, err := executeCommand(t, srv, "holidays", "--country", "us", "--previous", "--upcoming")
		require.Error(t, err)
	})
}

func TestHolidaysPresets(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	presets := "filter:\n" +
		"  japan: Country == \"JP\"\n" +
		"  default: Country == \"US\"\n"
	configPath := writeTestConfig(t, testKey, srv.URL, presets)

	t.Run("named preset", func(t *testing.T) {
		out, err := executeWithConfig(t, configPath, "holidays", "--country", "us,jp", "--preset", "Japan", "-o", "json")
		require.NoError(t, err)

		holidays := decodeJSON[[]holidayapi.Holiday](t, out)
		require.Len(t, holidays, 1)
		assert.Equal(t, "JP", holidays[0].Country)
	})

	t.Run("default preset", func(t *testing.T) {
		out, err := executeWithConfig(t, configPath, "holidays", "--country", "us,jp", "-o", "json")
		require.NoError(t, err)

		holidays := decodeJSON[[]holidayapi.Holiday](t, out)
		require.Len(t, holidays, 1)
		assert.Equal(t, "US", holidays[0].Country)
	})

	t.Run("filter beats default preset", func(t *testing.T) {
		out, err := executeWithConfig(t, configPath, "holidays", "--country", "us,jp", "--filter", "Public", "-o", "json")
		require.NoError(t, err)
		assert.Len(t, decodeJSON[[]holidayapi.Holiday](t, out), 2)
	})

	t.Run("raw skips default preset", func(t *testing.T) {
		out, err := executeWithConfig(t, configPath, "holidays", "--country", "jp", "--raw")
		require.NoError(t, err)
		assert.Contains(t, out, `"holidays"`)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := executeWithConfig(t, configPath, "holidays", "--country", "us", "--preset", "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "preset 'missing' not found in config (available: default, japan)")
	})

	t.Run("broken preset", func(t *testing.T) {
		broken := writeTestConfig(t, testKey, srv.URL, "filter:\n  broken: \"Name ==\"\n")
		_, err := executeWithConfig(t, broken, "holidays", "--country", "us")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid filter preset")
	})
}

func TestWorkdayCommands(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	t.Run("workday", func(t *testing.T) {
		out, err := executeCommand(t, srv, "workday", "--country", "us", "--start", "2024-01-01", "--days", "7")
		require.NoError(t, err)
		assert.Equal(t, "✓ 7 working days after 2024-01-01 in US → 2024-01-10 (Wednesday)\n", out)

		query := srv.LastQuery()
		assert.Equal(t, "/v1/workday", srv.LastPath())
		assert.Equal(t, "2024-01-01", query.Get("start"))
		assert.Equal(t, "7", query.Get("days"))
		assert.False(t, query.Has("year"))
	})

	t.Run("workday validates dates", func(t *testing.T) {
		_, err := executeCommand(t, srv, "workday", "--country", "us", "--start", "01/01/2024", "--days", "7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid --start "01/01/2024"`)
	})

	t.Run("workday needs a positive count", func(t *testing.T) {
		_, err := executeCommand(t, srv, "workday", "--country", "us", "--start", "2024-01-01", "--days", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--days must be at least 1")
	})

	t.Run("workdays json", func(t *testing.T) {
		out, err := executeCommand(t, srv, "workdays", "--country", "us", "--start", "2024-01-01", "--end", "2024-01-31", "-o", "json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"workdays": 21}`, out)
		assert.Equal(t, "2024-01-31", srv.LastQuery().Get("end"))
	})
}

func TestLanguagesCommand(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	out, err := executeCommand(t, srv, "languages", "--search", "ja")
	require.NoError(t, err)
	assert.Contains(t, out, "Languages (2):")
	assert.Contains(t, out, "Japanese")
	assert.Equal(t, "ja", srv.LastQuery().Get("search"))
}

func TestCommandErrors(t *testing.T) {
	t.Run("rejected key", func(t *testing.T) {
		srv := fakeapi.New("11111111-1111-1111-1111-111111111111")
		defer srv.Close()

		_, err := executeCommand(t, srv, "languages")
		require.Error(t, err)
		assert.ErrorIs(t, err, holidayapi.ErrInvalidOrExpiredKey)
	})

	t.Run("rejected key on one of several countries", func(t *testing.T) {
		srv := fakeapi.New("11111111-1111-1111-1111-111111111111")
		defer srv.Close()

		_, err := executeCommand(t, srv, "holidays", "--country", "us,jp")
		require.Error(t, err)
		assert.ErrorIs(t, err, holidayapi.ErrInvalidOrExpiredKey)
	})

	t.Run("invalid output format", func(t *testing.T) {
		srv := fakeapi.New(testKey)
		defer srv.Close()

		_, err := executeCommand(t, srv, "languages", "-o", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format: yaml")
	})
}

func TestVersionCommand(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	out, err := executeCommand(t, srv, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "holidayapi dev (built unknown")
}

func TestUpdateRefusesDevBuild(t *testing.T) {
	srv := fakeapi.New(testKey)
	defer srv.Close()

	_, err := executeCommand(t, srv, "update", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot update development build "dev"`)
}

func TestSplitCountries(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"us", []string{"US"}},
		{"us,jp", []string{"US", "JP"}},
		{" us , JP ,us", []string{"US", "JP"}},
		{"us-ca,,", []string{"US-CA"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitCountries(tt.input))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
