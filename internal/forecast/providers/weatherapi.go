package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"forecast-board/internal/forecast"
)

// weatherAPITimeLayout is the per-hour timestamp format of WeatherAPI.com.
const weatherAPITimeLayout = "2006-01-02 15:04"

// WeatherAPIProvider fetches hourly forecasts from WeatherAPI.com and
// flattens the per-day/per-hour nesting into the Payload entry list.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	units   string
	days    int
	baseURL string
	httpCfg ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey, units string, days int) *WeatherAPIProvider {
	if days <= 0 || days > 14 {
		days = 5
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		units:   units,
		days:    days,
		baseURL: "https://api.weatherapi.com/v1/forecast.json",
		httpCfg: ClientConfig{
			Client: client,
			Retry:  defaultRetry,
		},
		circuit: newBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, loc forecast.Location) (*forecast.Payload, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", loc.Query())
		values.Set("days", strconv.Itoa(p.days))
		values.Set("aqi", "no")
		values.Set("alerts", "no")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetchWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Location struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"location"`
		Forecast struct {
			ForecastDay []struct {
				Hour []struct {
					TimeEpoch  int64   `json:"time_epoch"`
					Time       string  `json:"time"`
					TempC      float64 `json:"temp_c"`
					TempF      float64 `json:"temp_f"`
					Humidity   float64 `json:"humidity"`
					PressureMb float64 `json:"pressure_mb"`
					WindKph    float64 `json:"wind_kph"`
					Condition  struct {
						Text string `json:"text"`
						Icon string `json:"icon"`
					} `json:"condition"`
				} `json:"hour"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	payload := &forecast.Payload{
		City: forecast.City{Name: body.Location.Name, Country: body.Location.Country},
	}
	if payload.City.Name == "" {
		payload.City = forecast.City{Name: loc.City, Country: loc.Country}
	}

	for _, day := range body.Forecast.ForecastDay {
		for _, h := range day.Hour {
			temp := h.TempC
			if p.units == "imperial" {
				temp = h.TempF
			}

			dtTxt := h.Time
			if ts, err := time.Parse(weatherAPITimeLayout, h.Time); err == nil {
				dtTxt = ts.Format(dtTxtLayout)
			}

			payload.List = append(payload.List, forecast.Entry{
				Dt:    h.TimeEpoch,
				DtTxt: dtTxt,
				Main: forecast.Metrics{
					Temp:     temp,
					Humidity: h.Humidity,
					Pressure: h.PressureMb,
				},
				Weather: []forecast.Condition{{
					Main: h.Condition.Text,
					Icon: h.Condition.Icon,
				}},
				Wind: forecast.Wind{
					// kph to m/s (approx).
					Speed: h.WindKph / 3.6,
				},
			})
		}
	}
	payload.Cnt = len(payload.List)

	return payload, nil
}
