package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*WeatherClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &WeatherClient{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Client:  &http.Client{Timeout: 2 * time.Second},
	}
	return client, srv
}

func TestWeatherClientFetch_OK(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "Martapura", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temp_c":27.4,"condition":{"text":"Hujan ringan"},"humidity":88,"precip_mm":2.1}}`))
	})
	defer srv.Close()

	obs, ok := client.Fetch("Martapura")
	require.True(t, ok)
	require.NotNil(t, obs.TempC)
	require.InDelta(t, 27.4, *obs.TempC, 0.001)
	require.NotNil(t, obs.Condition)
	require.Equal(t, "Hujan ringan", *obs.Condition)
	require.NotNil(t, obs.Humidity)
	require.Equal(t, 88, *obs.Humidity)
	require.NotNil(t, obs.RainMM)
	require.InDelta(t, 2.1, *obs.RainMM, 0.001)
}

func TestWeatherClientFetch_MissingFields(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temp_c":30.0,"condition":{}}}`))
	})
	defer srv.Close()

	obs, ok := client.Fetch("Gambut")
	require.True(t, ok)
	require.NotNil(t, obs.TempC)
	require.Nil(t, obs.Condition)
	require.Nil(t, obs.Humidity)
	require.Nil(t, obs.RainMM)
}

func TestWeatherClientFetch_Non200(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	_, ok := client.Fetch("Martapura")
	require.False(t, ok)
}

func TestWeatherClientFetch_EmptyAPIKey(t *testing.T) {
	called := false
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer srv.Close()
	client.APIKey = ""

	_, ok := client.Fetch("Martapura")
	require.False(t, ok)
	require.False(t, called)
}
