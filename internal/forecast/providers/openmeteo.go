package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"forecast-board/internal/forecast"
)

// dtTxtLayout is the timestamp format OpenWeatherMap uses in dt_txt; the
// other providers normalize to it so every payload carries one format.
const dtTxtLayout = "2006-01-02 15:04:05"

// openMeteoTimeLayout is the ISO8601 variant Open-Meteo returns for hourly
// timestamps.
const openMeteoTimeLayout = "2006-01-02T15:04"

// OpenMeteoProvider fetches hourly forecasts from Open-Meteo. The API itself
// needs no key, but it only accepts coordinates, so city/country pairs are
// resolved through the Google geocoding API first.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	units   string
	httpCfg ClientConfig
	circuit *gobreaker.CircuitBreaker

	geocode func(loc forecast.Location) (lat, lon float64, err error)
}

func NewOpenMeteoProvider(client *http.Client, geocoderAPIKey, units string) *OpenMeteoProvider {
	geocoder.ApiKey = geocoderAPIKey

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		units:   units,
		httpCfg: ClientConfig{
			Client: client,
			Retry:  defaultRetry,
		},
		circuit: newBreaker("openmeteo"),
		geocode: geocodeLocation,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, loc forecast.Location) (*forecast.Payload, error) {
	lat, lon, err := p.geocode(loc)
	if err != nil {
		return nil, fmt.Errorf("geocoding %s: %w", loc, err)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("hourly", "temperature_2m")
		values.Set("timezone", "UTC")
		if p.units == "imperial" {
			values.Set("temperature_unit", "fahrenheit")
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Hourly struct {
			Time        []string  `json:"time"`
			Temperature []float64 `json:"temperature_2m"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if len(body.Hourly.Time) != len(body.Hourly.Temperature) {
		return nil, fmt.Errorf("open-meteo returned %d timestamps but %d temperatures",
			len(body.Hourly.Time), len(body.Hourly.Temperature))
	}

	payload := &forecast.Payload{
		City: forecast.City{Name: loc.City, Country: loc.Country},
		List: make([]forecast.Entry, 0, len(body.Hourly.Time)),
	}

	for i, raw := range body.Hourly.Time {
		ts, err := time.Parse(openMeteoTimeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid open-meteo timestamp %q: %w", raw, err)
		}
		ts = ts.UTC()

		payload.List = append(payload.List, forecast.Entry{
			Dt:    ts.Unix(),
			DtTxt: ts.Format(dtTxtLayout),
			Main: forecast.Metrics{
				Temp: body.Hourly.Temperature[i],
			},
		})
	}
	payload.Cnt = len(payload.List)

	return payload, nil
}

// geocodeLocation resolves a city/country pair to coordinates via the Google
// geocoding API.
func geocodeLocation(loc forecast.Location) (float64, float64, error) {
	address := geocoder.Address{
		City:    loc.City,
		Country: loc.Country,
	}

	coords, err := geocoder.Geocoding(address)
	if err != nil {
		return 0, 0, err
	}
	return coords.Latitude, coords.Longitude, nil
}
