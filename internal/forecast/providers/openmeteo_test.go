package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forecast-board/internal/forecast"
)

func testOpenMeteoProvider(srv *httptest.Server) *OpenMeteoProvider {
	p := NewOpenMeteoProvider(srv.Client(), "", "metric")
	p.baseURL = srv.URL
	p.httpCfg.Retry = RetryPolicy{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
	}
	p.geocode = func(loc forecast.Location) (float64, float64, error) {
		return 52.52, 13.405, nil
	}
	return p
}

func TestOpenMeteoFetchForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "temperature_2m", q.Get("hourly"))
		assert.NotEmpty(t, q.Get("latitude"))
		assert.NotEmpty(t, q.Get("longitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"hourly": {
				"time": ["2026-08-25T12:00", "2026-08-25T13:00"],
				"temperature_2m": [18.5, 19.2]
			}
		}`))
	}))
	defer srv.Close()

	p := testOpenMeteoProvider(srv)

	payload, err := p.FetchForecast(context.Background(), forecast.Location{City: "Berlin", Country: "DE"})
	require.NoError(t, err)

	require.Len(t, payload.List, 2)
	assert.Equal(t, "Berlin", payload.City.Name)

	// Timestamps are normalized to the dt_txt layout.
	assert.Equal(t, "2026-08-25 12:00:00", payload.List[0].DtTxt)
	assert.Equal(t, "2026-08-25 13:00:00", payload.List[1].DtTxt)
	assert.Equal(t, 18.5, payload.List[0].Main.Temp)
	assert.Equal(t, 19.2, payload.List[1].Main.Temp)
}

func TestOpenMeteoRejectsMisalignedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"hourly": {
				"time": ["2026-08-25T12:00", "2026-08-25T13:00"],
				"temperature_2m": [18.5]
			}
		}`))
	}))
	defer srv.Close()

	p := testOpenMeteoProvider(srv)

	_, err := p.FetchForecast(context.Background(), forecast.Location{City: "Berlin"})
	assert.Error(t, err)
}

func TestOpenMeteoGeocodingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the forecast API must not be called when geocoding fails")
	}))
	defer srv.Close()

	p := testOpenMeteoProvider(srv)
	p.geocode = func(loc forecast.Location) (float64, float64, error) {
		return 0, 0, assert.AnError
	}

	_, err := p.FetchForecast(context.Background(), forecast.Location{City: "Nowhere"})
	assert.ErrorIs(t, err, assert.AnError)
}
