package holidayapi

import (
	"context"
	"maps"
)

// LanguagesRequest builds a languages query.
type LanguagesRequest struct {
	client *Client
	params Params
}

// Language limits the result to a single language code.
func (r LanguagesRequest) Language(language string) LanguagesRequest {
	r.params = r.params.With("language", language)
	return r
}

// Search filters languages by name or code.
func (r LanguagesRequest) Search(search string) LanguagesRequest {
	r.params = r.params.With("search", search)
	return r
}

// Pretty asks the API to indent its JSON output.
func (r LanguagesRequest) Pretty(pretty bool) LanguagesRequest {
	r.params = r.params.With("pretty", formatBool(pretty))
	return r
}

// Endpoint implements Request.
func (r LanguagesRequest) Endpoint() Endpoint { return EndpointLanguages }

// Params implements Request.
func (r LanguagesRequest) Params() Params { return maps.Clone(r.params) }

// GetRaw issues the request and returns the body text.
func (r LanguagesRequest) GetRaw(ctx context.Context) (string, error) {
	return r.client.Do(ctx, r)
}

// GetFull issues the request and decodes the whole envelope.
func (r LanguagesRequest) GetFull(ctx context.Context) (*LanguagesResponse, error) {
	return fetch[LanguagesResponse](ctx, r.client, r)
}

// Get issues the request and returns only the languages.
func (r LanguagesRequest) Get(ctx context.Context) ([]Language, error) {
	resp, err := r.GetFull(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Languages, nil
}
