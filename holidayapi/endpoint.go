package holidayapi

import "strings"

// Endpoint identifies one of the Holiday API resources
type Endpoint int

const (
	// EndpointCountries lists supported countries
	EndpointCountries Endpoint = iota
	// EndpointHolidays lists holidays for a country and year
	EndpointHolidays
	// EndpointWorkday finds the date a number of working days out
	EndpointWorkday
	// EndpointWorkdays counts working days between two dates
	EndpointWorkdays
	// EndpointLanguages lists supported languages
	EndpointLanguages
)

// String returns the string representation of an Endpoint
func (e Endpoint) String() string {
	switch e {
	case EndpointCountries:
		return "Countries"
	case EndpointHolidays:
		return "Holidays"
	case EndpointWorkday:
		return "Workday"
	case EndpointWorkdays:
		return "Workdays"
	case EndpointLanguages:
		return "Languages"
	default:
		return "Unknown"
	}
}

// Path returns the URL path segment for the endpoint
func (e Endpoint) Path() string {
	return strings.ToLower(e.String())
}
