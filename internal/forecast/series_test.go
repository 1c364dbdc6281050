package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeriesAlignment(t *testing.T) {
	p := &Payload{
		List: []Entry{
			{DtTxt: "2026-08-25 00:00:00", Main: Metrics{Temp: 14.1}},
			{DtTxt: "2026-08-25 03:00:00", Main: Metrics{Temp: 12.8}},
			{DtTxt: "2026-08-25 06:00:00", Main: Metrics{Temp: 15.3}},
		},
	}

	s := BuildSeries(p)

	require.Len(t, s.Dates, 3)
	require.Len(t, s.Temps, 3)
	assert.Equal(t, []string{"2026-08-25 00:00:00", "2026-08-25 03:00:00", "2026-08-25 06:00:00"}, s.Dates)
	assert.Equal(t, []float64{14.1, 12.8, 15.3}, s.Temps)
}

func TestBuildSeriesNilPayload(t *testing.T) {
	s := BuildSeries(nil)

	assert.NotNil(t, s.Dates)
	assert.NotNil(t, s.Temps)
	assert.Empty(t, s.Dates)
	assert.Empty(t, s.Temps)
}

func TestComputeStats(t *testing.T) {
	stats, ok := ComputeStats([]float64{10, -2, 7, 13})

	require.True(t, ok)
	assert.Equal(t, -2.0, stats.Min)
	assert.Equal(t, 13.0, stats.Max)
	assert.Equal(t, 7.0, stats.Avg)
}

func TestComputeStatsEmpty(t *testing.T) {
	_, ok := ComputeStats(nil)
	assert.False(t, ok)
}
