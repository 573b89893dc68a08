package holidayapi

import (
	"context"
	"maps"
)

// HolidaysRequest builds a holidays query for one country and year.
//
// Previous and Upcoming are mutually exclusive, and Day needs Month. The
// API rejects such combinations; they are not checked here.
type HolidaysRequest struct {
	client *Client
	params Params
}

func newHolidaysRequest(c *Client, country string, year int) HolidaysRequest {
	return HolidaysRequest{
		client: c,
		params: Params{
			"country": country,
			"year":    formatInt(year),
		},
	}
}

// Month limits the result to a month (1-12).
func (r HolidaysRequest) Month(month int) HolidaysRequest {
	r.params = r.params.With("month", formatInt(month))
	return r
}

// Day limits the result to a day of the month. Requires Month.
func (r HolidaysRequest) Day(day int) HolidaysRequest {
	r.params = r.params.With("day", formatInt(day))
	return r
}

// Public limits the result to public holidays.
func (r HolidaysRequest) Public(public bool) HolidaysRequest {
	r.params = r.params.With("public", formatBool(public))
	return r
}

// Subdivisions includes holidays observed only in subdivisions.
func (r HolidaysRequest) Subdivisions(subdivisions bool) HolidaysRequest {
	r.params = r.params.With("subdivisions", formatBool(subdivisions))
	return r
}

// Search filters holidays by name.
func (r HolidaysRequest) Search(search string) HolidaysRequest {
	r.params = r.params.With("search", search)
	return r
}

// Language translates holiday names (ISO 639-1 code).
func (r HolidaysRequest) Language(language string) HolidaysRequest {
	r.params = r.params.With("language", language)
	return r
}

// Previous returns the holidays before the given date. Requires Month and Day.
func (r HolidaysRequest) Previous(previous bool) HolidaysRequest {
	r.params = r.params.With("previous", formatBool(previous))
	return r
}

// Upcoming returns the holidays after the given date. Requires Month and Day.
func (r HolidaysRequest) Upcoming(upcoming bool) HolidaysRequest {
	r.params = r.params.With("upcoming", formatBool(upcoming))
	return r
}

// Pretty asks the API to indent its JSON output.
func (r HolidaysRequest) Pretty(pretty bool) HolidaysRequest {
	r.params = r.params.With("pretty", formatBool(pretty))
	return r
}

// Endpoint implements Request.
func (r HolidaysRequest) Endpoint() Endpoint { return EndpointHolidays }

// Params implements Request.
func (r HolidaysRequest) Params() Params { return maps.Clone(r.params) }

// GetRaw issues the request and returns the body text.
func (r HolidaysRequest) GetRaw(ctx context.Context) (string, error) {
	return r.client.Do(ctx, r)
}

// GetFull issues the request and decodes the whole envelope.
func (r HolidaysRequest) GetFull(ctx context.Context) (*HolidaysResponse, error) {
	return fetch[HolidaysResponse](ctx, r.client, r)
}

// Get issues the request and returns only the holidays.
func (r HolidaysRequest) Get(ctx context.Context) ([]Holiday, error) {
	resp, err := r.GetFull(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Holidays, nil
}
