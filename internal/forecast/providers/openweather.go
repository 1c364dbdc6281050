package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"forecast-board/internal/forecast"
)

// OpenWeatherProvider fetches the OpenWeatherMap 5-day/3-hour forecast.
// Its response is already in the Payload shape, so it decodes directly.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	units   string
	baseURL string
	httpCfg ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey, units string) *OpenWeatherProvider {
	if units == "" {
		units = "metric"
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		units:   units,
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg: ClientConfig{
			Client: client,
			Retry:  defaultRetry,
		},
		circuit: newBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, loc forecast.Location) (*forecast.Payload, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", p.units)
		values.Set("q", loc.Query())

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload forecast.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.City.Name == "" {
		payload.City = forecast.City{Name: loc.City, Country: loc.Country}
	}

	return &payload, nil
}
