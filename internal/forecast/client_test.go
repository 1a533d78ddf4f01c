package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/imamik/nsjourney/internal/testing"
)

const sampleBody = `{
  "city": {"name": "halifax", "country": "CA", "timezone": -10800},
  "list": [
    {"dt": 1714557600, "main": {"temp": 12.5, "feels_like": 10, "humidity": 71},
     "weather": [{"description": "light rain", "icon": "10d"}], "wind": {"speed": 4.2}},
    {"dt": 1714568400, "main": {"temp": 9, "humidity": 80},
     "weather": [{"description": "overcast clouds", "icon": "04n"}], "wind": {}}
  ]
}`

func newTestServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, sampleBody, func(r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Halifax,CA", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
	})

	c := NewClient(" test-key ", WithBaseURL(srv.URL+"/"))
	resp, err := c.Fetch(testutil.TestContext(t), Query{City: "  halifax ", Country: "ca"})
	require.NoError(t, err)

	require.Len(t, resp.List, 2)
	assert.Equal(t, "halifax", resp.City.Name)
	assert.Equal(t, -10800, resp.City.Timezone)
	require.NotNil(t, resp.List[0].Main.Temp)
	assert.InDelta(t, 12.5, *resp.List[0].Main.Temp, 0.001)
	assert.Nil(t, resp.List[1].Main.FeelsLike)
	assert.Nil(t, resp.List[1].Wind.Speed)
	assert.Equal(t, "10d", resp.List[0].Icon())
}

func TestFetch_Units(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, sampleBody, func(r *http.Request) {
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
	})

	c := NewClient("k", WithBaseURL(srv.URL), WithUnits("imperial"))
	_, err := c.Fetch(testutil.TestContext(t), Query{City: "Truro"})
	require.NoError(t, err)
	assert.Equal(t, "imperial", c.Units())
}

func TestFetch_APIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"with message", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, "HTTP 404 (city not found)"},
		{"invalid key", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, "HTTP 401 (Invalid API key)"},
		{"non-json body", http.StatusBadGateway, `<html>bad gateway</html>`, "HTTP 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			c := NewClient("k", WithBaseURL(srv.URL))

			_, err := c.Fetch(context.Background(), Query{City: "Atlantis"})
			require.Error(t, err)

			apiErr, ok := IsAPIError(err)
			require.True(t, ok, "expected *APIError, got %v", err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Error())
		})
	}
}

func TestFetch_DecodeError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"list": "nope"}`, nil)
	c := NewClient("k", WithBaseURL(srv.URL))

	_, err := c.Fetch(context.Background(), Query{City: "Truro"})
	require.Error(t, err)
	_, isAPI := IsAPIError(err)
	assert.False(t, isAPI)
	var syntaxOrType *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &syntaxOrType)
}

func TestFetch_InputErrors(t *testing.T) {
	called := false
	srv := newTestServer(t, http.StatusOK, sampleBody, func(*http.Request) { called = true })

	_, err := NewClient("k", WithBaseURL(srv.URL)).Fetch(context.Background(), Query{City: " a "})
	assert.ErrorIs(t, err, ErrCityTooShort)

	// City is checked before the key.
	_, err = NewClient("", WithBaseURL(srv.URL)).Fetch(context.Background(), Query{City: "x"})
	assert.ErrorIs(t, err, ErrCityTooShort)

	_, err = NewClient("   ", WithBaseURL(srv.URL)).Fetch(context.Background(), Query{City: "Truro"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	assert.False(t, called, "no request should be made for invalid input")
}

func TestFetch_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient("k", WithBaseURL(srv.URL)).Fetch(ctx, Query{City: "Truro"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestURL(t *testing.T) {
	c := NewClient("abc")
	assert.Equal(t,
		"https://api.openweathermap.org/data/2.5/forecast?appid=abc&q=Halifax%2CCA&units=metric",
		c.URL(Query{City: "Halifax", Country: "CA"}))
}
