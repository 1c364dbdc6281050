package forecast

import (
	"context"
)

// Provider abstracts a forecast data source (e.g. OpenWeatherMap, Open-Meteo,
// WeatherAPI). Implementations normalize their wire format into a Payload.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, loc Location) (*Payload, error)
}
