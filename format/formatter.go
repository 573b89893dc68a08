package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/s0up4200/holidayapi/holidayapi"
)

// ConsoleFormatter renders API results for terminal display
type ConsoleFormatter struct {
	color bool
}

// NewConsoleFormatter creates a new console formatter. With color disabled
// the output is plain text.
func NewConsoleFormatter(color bool) *ConsoleFormatter {
	return &ConsoleFormatter{color: color}
}

func (f *ConsoleFormatter) render(style lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return style.Render(text)
}

func (f *ConsoleFormatter) header(sb *strings.Builder, singular, plural string, count int) {
	noun := plural
	if count == 1 {
		noun = singular
	}
	fmt.Fprintf(sb, "\n%s (%d):\n\n", f.render(styleTitle, noun), count)
}

// branch returns the tree prefix for an entry and the indent for its details
func branch(isLast bool) (prefix, indent string) {
	if isLast {
		return "╰── ", "    "
	}
	return "├── ", "│   "
}

// FormatCountries formats a list of countries
func (f *ConsoleFormatter) FormatCountries(countries []holidayapi.Country) string {
	if len(countries) == 0 {
		return "No countries found"
	}

	var sb strings.Builder
	f.header(&sb, "Country", "Countries", len(countries))

	for i, country := range countries {
		isLast := i == len(countries)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s%s %s\n", prefix, f.render(styleNumber, country.Code), f.render(styleValue, country.Name))

		var codes []string
		if country.Codes.Alpha3 != "" {
			codes = append(codes, country.Codes.Alpha3)
		}
		if country.Codes.Numeric != "" {
			codes = append(codes, country.Codes.Numeric)
		}
		if len(codes) > 0 {
			fmt.Fprintf(&sb, "%sCodes: %s\n", indent, strings.Join(codes, " | "))
		}
		if len(country.Languages) > 0 {
			fmt.Fprintf(&sb, "%sLanguages: %s\n", indent, strings.Join(country.Languages, ", "))
		}
		if n := len(country.Subdivisions); n > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, f.render(styleDim, fmt.Sprintf("%d subdivisions", n)))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatHolidays formats a list of holidays
func (f *ConsoleFormatter) FormatHolidays(holidays []holidayapi.Holiday) string {
	if len(holidays) == 0 {
		return "No holidays found"
	}

	var sb strings.Builder
	f.header(&sb, "Holiday", "Holidays", len(holidays))

	for i, holiday := range holidays {
		isLast := i == len(holidays)-1
		prefix, indent := branch(isLast)

		name := holiday.Name
		if holiday.Public {
			name = f.render(stylePublic, name)
		} else {
			name = f.render(styleValue, name)
		}
		fmt.Fprintf(&sb, "%s%s %s\n", prefix, f.render(styleNumber, holiday.Date), name)

		details := []string{holiday.Country}
		if day := holiday.Weekday.Date.Name; day != "" {
			details = append(details, day)
		}
		if holiday.Public {
			details = append(details, "Public")
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(details, " | "))

		if holiday.Observed != "" && holiday.Observed != holiday.Date {
			observed := fmt.Sprintf("Observed %s %s", iconArrow, holiday.Observed)
			if day := holiday.Weekday.Observed.Name; day != "" {
				observed += fmt.Sprintf(" (%s)", day)
			}
			fmt.Fprintf(&sb, "%s%s\n", indent, f.render(styleWarning, observed))
		}
		if len(holiday.Subdivisions) > 0 {
			fmt.Fprintf(&sb, "%sSubdivisions: %s\n", indent, strings.Join(holiday.Subdivisions, ", "))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatLanguages formats a list of languages
func (f *ConsoleFormatter) FormatLanguages(languages []holidayapi.Language) string {
	if len(languages) == 0 {
		return "No languages found"
	}

	var sb strings.Builder
	f.header(&sb, "Language", "Languages", len(languages))

	for i, language := range languages {
		prefix, _ := branch(i == len(languages)-1)
		code := fmt.Sprintf("%-6s", language.Code)
		fmt.Fprintf(&sb, "%s%s %s\n", prefix, f.render(styleNumber, code), f.render(styleValue, language.Name))
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatWorkday formats the result of a workday lookup
func (f *ConsoleFormatter) FormatWorkday(country, start string, days int, result holidayapi.WorkdayResult) string {
	dayText := "working day"
	if days != 1 {
		dayText = "working days"
	}

	date := f.render(styleNumber, result.Date)
	if result.Weekday.Name != "" {
		date += " " + f.render(styleDim, "("+result.Weekday.Name+")")
	}

	return fmt.Sprintf("%s %d %s after %s in %s %s %s\n",
		f.render(stylePublic, iconSuccess), days, dayText, start, strings.ToUpper(country), iconArrow, date)
}

// FormatWorkdays formats the result of a workdays count
func (f *ConsoleFormatter) FormatWorkdays(country, start, end string, count int) string {
	dayText := "working day"
	if count != 1 {
		dayText = "working days"
	}

	return fmt.Sprintf("%s %s %s between %s and %s in %s\n",
		f.render(stylePublic, iconSuccess), f.render(styleNumber, fmt.Sprint(count)), dayText, start, end, strings.ToUpper(country))
}

// FormatError formats an error line
func (f *ConsoleFormatter) FormatError(err error) string {
	return fmt.Sprintf("%s %v\n", f.render(styleError, iconError), err)
}
