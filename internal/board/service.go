// Package board wires the forecast providers to the state store: it is the
// only place that turns a fetched payload into dispatched actions.
package board

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"forecast-board/internal/forecast"
	"forecast-board/internal/state"
)

var (
	// ErrNoProviders is returned when no forecast providers are configured.
	ErrNoProviders = errors.New("no forecast providers configured")

	// ErrNoLocation is returned by RefreshCurrent before any location has
	// been set.
	ErrNoLocation = errors.New("no location has been set")
)

// Service orchestrates fetching forecasts and replacing the application
// state. Providers are tried in order; the first successful payload wins.
type Service struct {
	store     *state.Store
	providers []forecast.Provider
	logger    *zap.Logger
}

// NewService creates a new Service.
func NewService(store *state.Store, providers []forecast.Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		providers: providers,
		logger:    logger,
	}
}

// Store exposes the underlying state store.
func (s *Service) Store() *state.Store {
	return s.store
}

// Refresh parses the location text, fetches a forecast for it, and replaces
// the state. The location is recorded even when every provider fails, so a
// later RefreshCurrent retries the same place; the previous payload and
// series are kept untouched on failure.
func (s *Service) Refresh(ctx context.Context, location string) (state.State, error) {
	loc, err := forecast.ParseLocation(location)
	if err != nil {
		return s.store.Current(), err
	}

	s.store.Dispatch(state.SetLocation(location))

	payload, err := s.fetch(ctx, loc)
	if err != nil {
		return s.store.Current(), err
	}

	series := forecast.BuildSeries(payload)

	s.store.Dispatch(state.SetData(payload))
	s.store.Dispatch(state.SetDates(series.Dates))
	next := s.store.Dispatch(state.SetTemps(series.Temps))

	s.logger.Info("state replaced with fresh forecast",
		zap.String("location", loc.String()),
		zap.Int("points", len(series.Dates)),
	)

	return next, nil
}

// RefreshCurrent re-fetches the forecast for the location already held in
// the state.
func (s *Service) RefreshCurrent(ctx context.Context) (state.State, error) {
	current := s.store.Current()
	if current.Location == "" {
		return current, ErrNoLocation
	}
	return s.Refresh(ctx, current.Location)
}

// fetch walks the provider list until one returns a payload.
func (s *Service) fetch(ctx context.Context, loc forecast.Location) (*forecast.Payload, error) {
	if len(s.providers) == 0 {
		return nil, ErrNoProviders
	}

	var lastErr error
	for _, p := range s.providers {
		payload, err := p.FetchForecast(ctx, loc)
		if err != nil {
			s.logger.Warn("provider fetch failed",
				zap.String("provider", p.Name()),
				zap.String("location", loc.String()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		if len(payload.List) == 0 {
			s.logger.Warn("provider returned empty forecast",
				zap.String("provider", p.Name()),
				zap.String("location", loc.String()),
			)
			lastErr = fmt.Errorf("provider %s returned an empty forecast", p.Name())
			continue
		}
		return payload, nil
	}

	return nil, fmt.Errorf("all providers failed for %s: %w", loc, lastErr)
}
