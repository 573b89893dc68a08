package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"strconv"
)

// Params maps query parameter names to their encoded values.
type Params map[string]string

// With returns a copy of p with key set to value. p is not modified.
func (p Params) With(key, value string) Params {
	out := make(Params, len(p)+1)
	maps.Copy(out, p)
	out[key] = value
	return out
}

// Values converts p into url.Values for encoding.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for key, value := range p {
		v.Set(key, value)
	}
	return v
}

// Request is implemented by every endpoint builder.
type Request interface {
	// Endpoint returns the resource the request targets
	Endpoint() Endpoint
	// Params returns a copy of the accumulated query parameters
	Params() Params
}

var (
	_ Request = CountriesRequest{}
	_ Request = HolidaysRequest{}
	_ Request = WorkdayRequest{}
	_ Request = WorkdaysRequest{}
	_ Request = LanguagesRequest{}
)

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

// fetch dispatches r and decodes the body into T
func fetch[T any](ctx context.Context, c *Client, r Request) (*T, error) {
	raw, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	return decode[T](r.Endpoint(), raw)
}

func decode[T any](endpoint Endpoint, raw string) (*T, error) {
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %s response: %w", ErrDecode, endpoint.Path(), err)
	}
	return &out, nil
}
