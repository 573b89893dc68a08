package holidayapi

import (
	"context"
	"maps"
)

// WorkdayRequest builds a query for the working day a number of days
// after a start date (YYYY-MM-DD).
type WorkdayRequest struct {
	client *Client
	params Params
}

func newWorkdayRequest(c *Client, country, start string, days int) WorkdayRequest {
	return WorkdayRequest{
		client: c,
		params: Params{
			"country": country,
			"start":   start,
			"days":    formatInt(days),
		},
	}
}

// Pretty asks the API to indent its JSON output.
func (r WorkdayRequest) Pretty(pretty bool) WorkdayRequest {
	r.params = r.params.With("pretty", formatBool(pretty))
	return r
}

// Endpoint implements Request.
func (r WorkdayRequest) Endpoint() Endpoint { return EndpointWorkday }

// Params implements Request.
func (r WorkdayRequest) Params() Params { return maps.Clone(r.params) }

// GetRaw issues the request and returns the body text.
func (r WorkdayRequest) GetRaw(ctx context.Context) (string, error) {
	return r.client.Do(ctx, r)
}

// GetFull issues the request and decodes the whole envelope.
func (r WorkdayRequest) GetFull(ctx context.Context) (*WorkdayResponse, error) {
	return fetch[WorkdayResponse](ctx, r.client, r)
}

// Get issues the request and returns the resulting date and its weekday.
func (r WorkdayRequest) Get(ctx context.Context) (WorkdayResult, error) {
	resp, err := r.GetFull(ctx)
	if err != nil {
		return WorkdayResult{}, err
	}
	return resp.Workday, nil
}

// WorkdaysRequest builds a query counting working days between two dates
// (YYYY-MM-DD).
type WorkdaysRequest struct {
	client *Client
	params Params
}

func newWorkdaysRequest(c *Client, country, start, end string) WorkdaysRequest {
	return WorkdaysRequest{
		client: c,
		params: Params{
			"country": country,
			"start":   start,
			"end":     end,
		},
	}
}

// Pretty asks the API to indent its JSON output.
func (r WorkdaysRequest) Pretty(pretty bool) WorkdaysRequest {
	r.params = r.params.With("pretty", formatBool(pretty))
	return r
}

// Endpoint implements Request.
func (r WorkdaysRequest) Endpoint() Endpoint { return EndpointWorkdays }

// Params implements Request.
func (r WorkdaysRequest) Params() Params { return maps.Clone(r.params) }

// GetRaw issues the request and returns the body text.
func (r WorkdaysRequest) GetRaw(ctx context.Context) (string, error) {
	return r.client.Do(ctx, r)
}

// GetFull issues the request and decodes the whole envelope.
func (r WorkdaysRequest) GetFull(ctx context.Context) (*WorkdaysResponse, error) {
	return fetch[WorkdaysResponse](ctx, r.client, r)
}

// Get issues the request and returns the number of working days.
func (r WorkdaysRequest) Get(ctx context.Context) (int, error) {
	resp, err := r.GetFull(ctx)
	if err != nil {
		return 0, err
	}
	return resp.Workdays, nil
}
