package state

import (
	"forecast-board/internal/forecast"
)

// ActionType tags an Action with the state change it requests.
type ActionType string

const (
	ActionSetLocation ActionType = "set_location"
	ActionSetData     ActionType = "set_data"
	ActionSetDates    ActionType = "set_dates"
	ActionSetTemps    ActionType = "set_temps"
	ActionSetSelected ActionType = "set_selected"
)

// Action describes an intended state change. Only the field matching Type is
// read by the reducer; the rest are ignored.
type Action struct {
	Type ActionType `json:"type"`

	Location string            `json:"location,omitempty"`
	Data     *forecast.Payload `json:"data,omitempty"`
	Dates    []string          `json:"dates,omitempty"`
	Temps    []float64         `json:"temps,omitempty"`
	Selected *Selection        `json:"selected,omitempty"`
}

// SetLocation replaces the tracked location text.
func SetLocation(location string) Action {
	return Action{Type: ActionSetLocation, Location: location}
}

// SetData replaces the raw forecast payload. The reducer also clears the
// current selection, since it points into the previous payload's series.
func SetData(data *forecast.Payload) Action {
	return Action{Type: ActionSetData, Data: data}
}

// SetDates replaces the chart x-axis values.
func SetDates(dates []string) Action {
	return Action{Type: ActionSetDates, Dates: dates}
}

// SetTemps replaces the chart y-axis values.
func SetTemps(temps []float64) Action {
	return Action{Type: ActionSetTemps, Temps: temps}
}

// SetSelected replaces the highlighted chart point. A nil selection clears
// the highlight.
func SetSelected(sel *Selection) Action {
	return Action{Type: ActionSetSelected, Selected: sel}
}
