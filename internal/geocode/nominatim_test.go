package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		status      int
		body        string
		expectedLat float64
		expectedLon float64
		expectedOK  bool
	}{
		{
			name:        "best match returned",
			address:     "123 Coffee St, Portland",
			status:      http.StatusOK,
			body:        `[{"lat": "45.5231", "lon": "-122.6765"}, {"lat": "1", "lon": "2"}]`,
			expectedLat: 45.5231,
			expectedLon: -122.6765,
			expectedOK:  true,
		},
		{
			name:       "empty result set",
			address:    "nowhere at all",
			status:     http.StatusOK,
			body:       `[]`,
			expectedOK: false,
		},
		{
			name:       "non-success status",
			address:    "123 Coffee St",
			status:     http.StatusTooManyRequests,
			body:       ``,
			expectedOK: false,
		},
		{
			name:       "malformed response",
			address:    "123 Coffee St",
			status:     http.StatusOK,
			body:       `{"not": "an array"}`,
			expectedOK: false,
		},
		{
			name:       "unparsable coordinates",
			address:    "123 Coffee St",
			status:     http.StatusOK,
			body:       `[{"lat": "north", "lon": "west"}]`,
			expectedOK: false,
		},
		{
			name:       "empty address short-circuits",
			address:    "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserAgent string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserAgent = r.Header.Get("User-Agent")
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, tt.address, r.URL.Query().Get("q"))
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "CoffeeFilter/1.0", 5*time.Second)
			lat, lon, ok := client.Resolve(context.Background(), tt.address)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedLat, lat)
				assert.Equal(t, tt.expectedLon, lon)
				assert.GreaterOrEqual(t, lat, -90.0)
				assert.LessOrEqual(t, lat, 90.0)
				assert.GreaterOrEqual(t, lon, -180.0)
				assert.LessOrEqual(t, lon, 180.0)
				assert.Equal(t, "CoffeeFilter/1.0", gotUserAgent)
			}
		})
	}
}

func TestClient_ResolveNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "CoffeeFilter/1.0", time.Second)
	_, _, ok := client.Resolve(context.Background(), "123 Coffee St")
	assert.False(t, ok)
}
