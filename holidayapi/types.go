package holidayapi

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the date format used throughout the API
const DateLayout = "2006-01-02"

// resetsLayout is the format of Requests.Resets
const resetsLayout = "2006-01-02 15:04:05"

// Requests holds the rate-limit counters returned with every response
type Requests struct {
	Available int    `json:"available"`
	Used      int    `json:"used"`
	Resets    string `json:"resets"`
}

// ResetsAt parses Resets as a UTC timestamp
func (r Requests) ResetsAt() (time.Time, error) {
	return time.Parse(resetsLayout, r.Resets)
}

// Envelope holds the fields shared by every response
type Envelope struct {
	Requests Requests `json:"requests"`
	Status   int      `json:"status"`
	Error    *string  `json:"error,omitempty"`
	Warning  *string  `json:"warning,omitempty"`
}

// CountriesResponse is the countries endpoint envelope
type CountriesResponse struct {
	Envelope
	Countries []Country `json:"countries"`
}

// Country represents a supported country
type Country struct {
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	Languages    []string      `json:"languages"`
	Codes        Codes         `json:"codes"`
	Flag         string        `json:"flag"`
	Subdivisions []Subdivision `json:"subdivisions"`
}

// Codes holds the ISO 3166-1 codes of a country
type Codes struct {
	Alpha2  string `json:"alpha-2"`
	Alpha3  string `json:"alpha-3"`
	Numeric string `json:"numeric"`
}

// Subdivision represents an ISO 3166-2 subdivision of a country
type Subdivision struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
}

// HolidaysResponse is the holidays endpoint envelope
type HolidaysResponse struct {
	Envelope
	Holidays []Holiday `json:"holidays"`
}

// Holiday represents a single holiday occurrence
type Holiday struct {
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	Observed     string    `json:"observed"`
	Public       bool      `json:"public"`
	Country      string    `json:"country"`
	UUID         string    `json:"uuid"`
	Weekday      Weekday   `json:"weekday"`
	Subdivisions []string  `json:"subdivisions,omitempty"`
}

// DateTime parses Date
func (h Holiday) DateTime() (time.Time, error) {
	return time.Parse(DateLayout, h.Date)
}

// ParsedUUID parses UUID
func (h Holiday) ParsedUUID() (uuid.UUID, error) {
	return uuid.Parse(h.UUID)
}

// ObservedTime parses Observed
func (h Holiday) ObservedTime() (time.Time, error) {
	return time.Parse(DateLayout, h.Observed)
}

// Weekday holds the weekday of a holiday's date and of its observed date
type Weekday struct {
	Date     DayOfWeek `json:"date"`
	Observed DayOfWeek `json:"observed"`
}

// DayOfWeek names a weekday; Numeric runs from "1" (Monday) to "7" (Sunday)
type DayOfWeek struct {
	Name    string `json:"name"`
	Numeric string `json:"numeric"`
}

// WorkdayResponse is the workday endpoint envelope
type WorkdayResponse struct {
	Envelope
	Workday WorkdayResult `json:"workday"`
}

// WorkdayResult is the working day found by the workday endpoint
type WorkdayResult struct {
	Date    string    `json:"date"`
	Weekday DayOfWeek `json:"weekday"`
}

// WorkdaysResponse is the workdays endpoint envelope
type WorkdaysResponse struct {
	Envelope
	Workdays int `json:"workdays"`
}

// LanguagesResponse is the languages endpoint envelope
type LanguagesResponse struct {
	Envelope
	Languages []Language `json:"languages"`
}

// Language represents a supported language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
