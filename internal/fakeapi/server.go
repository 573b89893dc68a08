// Package fakeapi serves canned Holiday API responses for tests.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Response is a canned reply for one endpoint
type Response struct {
	Status int
	Body   string
}

// Server is an httptest server that mimics the v1 Holiday API
type Server struct {
	*httptest.Server

	key string

	mu        sync.Mutex
	overrides map[string]Response
	queries   []url.Values
	raw       []string
	paths     []string
}

// New starts a server that accepts only key
func New(key string) *Server {
	s := &Server{
		key:       key,
		overrides: make(map[string]Response),
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/{endpoint}", s.handle)
	})
	s.Server = httptest.NewServer(r)

	return s
}

// Respond replaces the reply for endpoint ("holidays", "countries", ...)
func (s *Server) Respond(endpoint string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[endpoint] = Response{Status: status, Body: body}
}

// LastQuery returns the query of the most recent request
func (s *Server) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}

// LastRawQuery returns the query string of the most recent request as sent
func (s *Server) LastRawQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.raw) == 0 {
		return ""
	}
	return s.raw[len(s.raw)-1]
}

// LastPath returns the URL path of the most recent request
func (s *Server) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.paths) == 0 {
		return ""
	}
	return s.paths[len(s.paths)-1]
}

// RequestCount returns how many requests the server has seen
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	endpoint := chi.URLParam(r, "endpoint")
	query := r.URL.Query()

	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.raw = append(s.raw, r.URL.RawQuery)
	s.paths = append(s.paths, r.URL.Path)
	override, hasOverride := s.overrides[endpoint]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if query.Get("key") != s.key {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":401,"error":"Invalid API key. Please check your key and try again."}`)
		return
	}

	if hasOverride {
		w.WriteHeader(override.Status)
		fmt.Fprint(w, override.Body)
		return
	}

	var payload map[string]any
	switch endpoint {
	case "countries":
		payload = map[string]any{"countries": []any{Country}}
	case "holidays":
		payload = map[string]any{"holidays": []any{holidayFor(query)}}
	case "workday":
		payload = map[string]any{"workday": map[string]any{
			"date":    "2024-01-10",
			"weekday": map[string]string{"name": "Wednesday", "numeric": "3"},
		}}
	case "workdays":
		payload = map[string]any{"workdays": 21}
	case "languages":
		payload = map[string]any{"languages": []any{
			map[string]string{"code": "en", "name": "English"},
			map[string]string{"code": "ja", "name": "Japanese"},
		}}
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":404,"error":"Not found."}`)
		return
	}

	payload["status"] = http.StatusOK
	payload["requests"] = map[string]any{
		"available": 9999,
		"used":      1,
		"resets":    "2024-02-01 00:00:00",
	}
	json.NewEncoder(w).Encode(payload)
}

// Country is the single country returned by the countries endpoint
var Country = map[string]any{
	"code":      "JP",
	"name":      "Japan",
	"languages": []string{"ja"},
	"codes": map[string]string{
		"alpha-2": "JP",
		"alpha-3": "JPN",
		"numeric": "392",
	},
	"flag": "https://flagsapi.com/JP/flat/64.png",
	"subdivisions": []map[string]any{
		{"code": "JP-13", "name": "Tokyo", "languages": []string{"ja"}},
	},
}

// HolidayUUID is the uuid of every holiday the server returns
const HolidayUUID = "c0bfc5f4-9d3c-4a41-9bde-1b8b0ee3e4f1"

// holidayFor builds a holiday in the requested country, year and month
func holidayFor(query url.Values) map[string]any {
	year, _ := strconv.Atoi(query.Get("year"))
	month, _ := strconv.Atoi(query.Get("month"))
	if month == 0 {
		month = 1
	}
	date := fmt.Sprintf("%04d-%02d-01", year, month)

	return map[string]any{
		"name":     "Founding Day",
		"date":     date,
		"observed": date,
		"public":   true,
		"country":  strings.ToUpper(query.Get("country")),
		"uuid":     HolidayUUID,
		"weekday": map[string]any{
			"date":     map[string]string{"name": "Monday", "numeric": "1"},
			"observed": map[string]string{"name": "Monday", "numeric": "1"},
		},
	}
}
