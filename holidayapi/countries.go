package holidayapi

import (
	"context"
	"maps"
)

// CountriesRequest builds a countries query. Setters return a new value;
// the receiver is never modified.
type CountriesRequest struct {
	client *Client
	params Params
}

// Country limits the result to a single country code.
func (r CountriesRequest) Country(country string) CountriesRequest {
	r.params = r.params.With("country", country)
	return r
}

// Search filters countries by name or code.
func (r CountriesRequest) Search(search string) CountriesRequest {
	r.params = r.params.With("search", search)
	return r
}

// Public limits subdivisions to those with public holidays.
func (r CountriesRequest) Public(public bool) CountriesRequest {
	r.params = r.params.With("public", formatBool(public))
	return r
}

// Pretty asks the API to indent its JSON output.
func (r CountriesRequest) Pretty(pretty bool) CountriesRequest {
	r.params = r.params.With("pretty", formatBool(pretty))
	return r
}

// Endpoint implements Request.
func (r CountriesRequest) Endpoint() Endpoint { return EndpointCountries }

// Params implements Request.
func (r CountriesRequest) Params() Params { return maps.Clone(r.params) }

// GetRaw issues the request and returns the body text.
func (r CountriesRequest) GetRaw(ctx context.Context) (string, error) {
	return r.client.Do(ctx, r)
}

// GetFull issues the request and decodes the whole envelope.
func (r CountriesRequest) GetFull(ctx context.Context) (*CountriesResponse, error) {
	return fetch[CountriesResponse](ctx, r.client, r)
}

// Get issues the request and returns only the countries.
func (r CountriesRequest) Get(ctx context.Context) ([]Country, error) {
	resp, err := r.GetFull(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Countries, nil
}
