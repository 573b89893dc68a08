// Package holidayapi provides a client for the Holiday API (https://holidayapi.com).
//
// The client validates the key format up front, builds per-endpoint queries
// through immutable builders and decodes the JSON envelopes into typed
// structures. It does not cache, retry or rate limit; every terminal call is
// a single GET.
//
// # Usage
//
//	client, err := holidayapi.New("00000000-0000-0000-0000-000000000000")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	holidays, err := client.Holidays("us", 2024).Month(12).Public(true).Get(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Each builder offers three terminal operations:
//
//   - GetRaw: the response body as text
//   - GetFull: the decoded envelope, including rate-limit metadata and warnings
//   - Get: only the payload (countries, holidays, languages, ...)
//
// Builder setters return a new value, so a partially built request can be
// reused as a template:
//
//	base := client.Holidays("jp", 2024).Public(true)
//	december := base.Month(12)
//	january := base.Month(1)
//
// # Error Handling
//
// The package defines several sentinel errors:
//
//   - ErrInvalidKeyFormat: the key is not shaped like a UUID (construction time)
//   - ErrInvalidVersion: the API version is not supported (construction time)
//   - ErrInvalidOrExpiredKey: the API answered 401
//   - ErrTransport: any other non-2xx status or a network failure
//   - ErrDecode: the body is not the expected JSON envelope
//   - ErrNoClient: the builder is a zero value rather than one made by a Client
//
// Non-2xx responses are returned as *APIError, which unwraps to either
// ErrInvalidOrExpiredKey or ErrTransport:
//
//	if errors.Is(err, holidayapi.ErrInvalidOrExpiredKey) {
//		// renew the key
//	}
//
// An envelope with a populated Error field on a 2xx response is not treated
// as a failure; inspect GetFull's result for it.
package holidayapi
