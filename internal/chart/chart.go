// Package chart turns the application state into a plotting-library-agnostic
// chart description. Nothing here renders; a client takes the X/Y arrays and
// forwards them to whatever plotting call it uses.
package chart

import (
	"fmt"

	"forecast-board/internal/forecast"
	"forecast-board/internal/state"
)

// Series is one plotted line.
type Series struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// Point is a highlighted chart coordinate.
type Point struct {
	Date string   `json:"date"`
	Temp *float64 `json:"temp,omitempty"`
}

// Chart describes the forecast chart for the current state.
type Chart struct {
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	XAxisTitle string    `json:"x_axis_title"`
	YAxisTitle string    `json:"y_axis_title"`
	// YAxisRange is [min, max] of the plotted temperatures, nil when there
	// is nothing to plot.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	Series     []Series  `json:"series"`
	Selected   *Point    `json:"selected,omitempty"`
}

// Build maps the state onto a chart description. An empty state yields an
// untitled chart with one empty series, which clients render as a blank plot.
func Build(s state.State) Chart {
	c := Chart{
		Type:       "line",
		XAxisTitle: "Date",
		YAxisTitle: "Temperature",
		Series: []Series{{
			Name: "Temperature",
			X:    s.Dates,
			Y:    s.Temps,
		}},
	}

	if s.Location != "" {
		c.Title = fmt.Sprintf("Forecast for %s", s.Location)
	}

	if stats, ok := forecast.ComputeStats(s.Temps); ok {
		c.YAxisRange = []float64{stats.Min, stats.Max}
	}

	if s.Selected != nil {
		c.Selected = &Point{
			Date: s.Selected.Date,
			Temp: s.Selected.Temp,
		}
	}

	return c
}
