// Package geocode resolves free-text addresses to coordinates using the
// OpenStreetMap Nominatim API (free, no API key required).
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client performs forward geocoding lookups against Nominatim. It makes a
// single attempt per address with a bounded timeout and treats every failure
// mode as "no match" so that callers decide whether missing coordinates are
// fatal.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a Nominatim client. userAgent identifies this service to
// the remote API, which its usage policy requires. A zero timeout defaults to
// 10 seconds.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// searchResult mirrors the relevant parts of the Nominatim search payload.
// Coordinates come back as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve geocodes an address, returning the best match. ok is false when the
// address is empty, the lookup fails, or no match is found; Resolve never
// returns an error to the caller.
func (c *Client) Resolve(ctx context.Context, address string) (lat, lon float64, ok bool) {
	if address == "" {
		return 0, 0, false
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("geocode: failed to build request")
		return 0, 0, false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geocode: lookup failed")
		return 0, 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("address", address).Msg("geocode: non-success response")
		return 0, 0, false
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Warn().Err(err).Str("address", address).Msg("geocode: malformed response")
		return 0, 0, false
	}

	if len(results) == 0 {
		return 0, 0, false
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		log.Warn().Str("lat", results[0].Lat).Str("address", address).Msg("geocode: invalid latitude in response")
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		log.Warn().Str("lon", results[0].Lon).Str("address", address).Msg("geocode: invalid longitude in response")
		return 0, 0, false
	}

	return lat, lon, true
}
