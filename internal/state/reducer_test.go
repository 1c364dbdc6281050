package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forecast-board/internal/forecast"
)

func sampleState() State {
	temp := 18.5
	return State{
		Location: "Berlin, DE",
		Data: &forecast.Payload{
			City: forecast.City{Name: "Berlin", Country: "DE"},
			List: []forecast.Entry{
				{DtTxt: "2026-08-25 12:00:00", Main: forecast.Metrics{Temp: 18.5}},
				{DtTxt: "2026-08-25 15:00:00", Main: forecast.Metrics{Temp: 21.0}},
			},
		},
		Dates:    []string{"2026-08-25 12:00:00", "2026-08-25 15:00:00"},
		Temps:    []float64{18.5, 21.0},
		Selected: &Selection{Date: "2026-08-25 12:00:00", Temp: &temp},
	}
}

func TestReduceSetLocation(t *testing.T) {
	s := sampleState()
	next := Reduce(s, SetLocation("Lisbon, PT"))

	assert.Equal(t, "Lisbon, PT", next.Location)
	// Everything else is untouched.
	assert.Equal(t, s.Data, next.Data)
	assert.Equal(t, s.Dates, next.Dates)
	assert.Equal(t, s.Temps, next.Temps)
	assert.Equal(t, s.Selected, next.Selected)
}

func TestReduceSetDataClearsSelection(t *testing.T) {
	s := sampleState()
	payload := &forecast.Payload{City: forecast.City{Name: "Lisbon"}}

	next := Reduce(s, SetData(payload))

	assert.Same(t, payload, next.Data)
	assert.Nil(t, next.Selected, "a new payload invalidates the old highlight")
	assert.Equal(t, s.Dates, next.Dates)
	assert.Equal(t, s.Temps, next.Temps)
}

func TestReduceSetDatesAndTemps(t *testing.T) {
	s := sampleState()

	next := Reduce(s, SetDates([]string{"a", "b", "c"}))
	next = Reduce(next, SetTemps([]float64{1, 2, 3}))

	assert.Equal(t, []string{"a", "b", "c"}, next.Dates)
	assert.Equal(t, []float64{1, 2, 3}, next.Temps)
	assert.Len(t, next.Dates, len(next.Temps))
}

func TestReduceSetSelected(t *testing.T) {
	s := sampleState()
	temp := 21.0

	next := Reduce(s, SetSelected(&Selection{Date: "2026-08-25 15:00:00", Temp: &temp}))
	require.NotNil(t, next.Selected)
	assert.Equal(t, "2026-08-25 15:00:00", next.Selected.Date)
	assert.Equal(t, 21.0, *next.Selected.Temp)

	cleared := Reduce(next, SetSelected(nil))
	assert.Nil(t, cleared.Selected)
}

func TestReduceSelectionWithoutTemp(t *testing.T) {
	next := Reduce(Default(), SetSelected(&Selection{Date: "2026-08-25 15:00:00"}))

	require.NotNil(t, next.Selected)
	assert.Nil(t, next.Selected.Temp)
}

func TestReduceUnknownActionReturnsInput(t *testing.T) {
	s := sampleState()
	next := Reduce(s, Action{Type: ActionType("does_not_exist"), Location: "ignored"})

	assert.Equal(t, s, next)
}

func TestReduceOnZeroState(t *testing.T) {
	var zero State

	next := Reduce(zero, SetLocation("Oslo, NO"))
	assert.Equal(t, "Oslo, NO", next.Location)
	assert.Nil(t, next.Data)
	assert.Empty(t, next.Dates)
	assert.Empty(t, next.Temps)
	assert.Nil(t, next.Selected)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := sampleState()
	before := sampleState()

	_ = Reduce(s, SetLocation("Lisbon, PT"))
	_ = Reduce(s, SetData(nil))
	_ = Reduce(s, SetDates([]string{"x"}))
	_ = Reduce(s, SetTemps([]float64{0}))
	_ = Reduce(s, SetSelected(nil))

	assert.Equal(t, before, s, "reducer must not mutate its argument")
}

func TestReduceCopiesActionSlices(t *testing.T) {
	dates := []string{"a", "b"}
	temps := []float64{1, 2}

	next := Reduce(Default(), SetDates(dates))
	next = Reduce(next, SetTemps(temps))

	// Mutating the caller's slices must not leak into the state.
	dates[0] = "mutated"
	temps[0] = -99

	assert.Equal(t, "a", next.Dates[0])
	assert.Equal(t, 1.0, next.Temps[0])
}

func TestReduceIdempotent(t *testing.T) {
	s := sampleState()
	actions := []Action{
		SetLocation("Lisbon, PT"),
		SetData(&forecast.Payload{}),
		SetDates([]string{"a"}),
		SetTemps([]float64{1}),
		SetSelected(&Selection{Date: "a"}),
		{Type: ActionType("nope")},
	}

	for _, a := range actions {
		first := Reduce(s, a)
		second := Reduce(s, a)
		assert.Equal(t, first, second, "action %s", a.Type)
	}
}
