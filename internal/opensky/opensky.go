package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://opensky-network.org/api"

// LiveFlight is one row of the /states/all snapshot, reduced to the fields
// the UI showed.
type LiveFlight struct {
	Callsign      string   `json:"callsign"`
	OriginCountry string   `json:"origin_country"`
	TimePosition  string   `json:"time_position"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	BaroAltitude  *float64 `json:"baro_alt_m"`
	OnGround      bool     `json:"on_ground"`
}

type Filter struct {
	Country          string
	CallsignContains string
	Limit            int
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// statesResponse mirrors the OpenSky wire format: each state vector is a
// positional array of mixed types.
type statesResponse struct {
	States [][]interface{} `json:"states"`
}

// Snapshot fetches the current state vectors and filters them in process,
// matching country and callsign case-insensitively as substrings.
func (c *Client) Snapshot(ctx context.Context, filter Filter) ([]LiveFlight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/states/all", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opensky request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opensky returned status %d", resp.StatusCode)
	}

	var payload statesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("opensky decode: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	flights := make([]LiveFlight, 0)
	for _, state := range payload.States {
		f := parseState(state)
		if filter.Country != "" && !strings.Contains(strings.ToLower(f.OriginCountry), strings.ToLower(filter.Country)) {
			continue
		}
		if filter.CallsignContains != "" && !strings.Contains(strings.ToLower(f.Callsign), strings.ToLower(filter.CallsignContains)) {
			continue
		}
		flights = append(flights, f)
		if len(flights) >= limit {
			break
		}
	}
	return flights, nil
}

func parseState(state []interface{}) LiveFlight {
	var f LiveFlight
	f.Callsign = strings.TrimSpace(stringAt(state, 1))
	f.OriginCountry = stringAt(state, 2)
	if ts := floatAt(state, 3); ts != nil {
		f.TimePosition = time.Unix(int64(*ts), 0).UTC().Format(time.RFC3339)
	}
	f.Longitude = floatAt(state, 5)
	f.Latitude = floatAt(state, 6)
	f.BaroAltitude = floatAt(state, 7)
	if b, ok := at(state, 8).(bool); ok {
		f.OnGround = b
	}
	return f
}

func at(state []interface{}, i int) interface{} {
	if i >= len(state) {
		return nil
	}
	return state[i]
}

func stringAt(state []interface{}, i int) string {
	if s, ok := at(state, i).(string); ok {
		return s
	}
	return ""
}

func floatAt(state []interface{}, i int) *float64 {
	if f, ok := at(state, i).(float64); ok {
		return &f
	}
	return nil
}
