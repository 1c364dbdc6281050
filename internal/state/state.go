package state

import (
	"forecast-board/internal/forecast"
)

// Selection identifies the currently highlighted chart point. Temp is nil
// when the client reported a date without a value attached.
type Selection struct {
	Date string   `json:"date"`
	Temp *float64 `json:"temp,omitempty"`
}

// State is the whole application state: the tracked location, the last
// fetched forecast payload, the extracted chart series, and the highlighted
// point. Dates and Temps are index-aligned; both come from one pass over
// Data.List (see forecast.BuildSeries).
type State struct {
	Location string            `json:"location"`
	Data     *forecast.Payload `json:"data,omitempty"`
	Dates    []string          `json:"dates"`
	Temps    []float64         `json:"temps"`
	Selected *Selection        `json:"selected,omitempty"`
}

// Default returns the startup state: empty location, no payload, empty
// series, nothing selected.
func Default() State {
	return State{
		Dates: []string{},
		Temps: []float64{},
	}
}

// clone returns a structural copy of s. Slices are reallocated so the copy
// shares no mutable backing with the original; the payload pointer is shared
// because payloads are never modified after a fetch.
func (s State) clone() State {
	next := s
	if s.Dates != nil {
		next.Dates = append([]string(nil), s.Dates...)
	}
	if s.Temps != nil {
		next.Temps = append([]float64(nil), s.Temps...)
	}
	if s.Selected != nil {
		sel := *s.Selected
		if s.Selected.Temp != nil {
			t := *s.Selected.Temp
			sel.Temp = &t
		}
		next.Selected = &sel
	}
	return next
}
