package forecast

// Series is the chart-ready projection of a payload: per-point timestamps on
// the x-axis and temperatures on the y-axis. Dates and Temps always have the
// same length and are index-aligned.
type Series struct {
	Dates []string  `json:"dates"`
	Temps []float64 `json:"temps"`
}

// BuildSeries extracts the chart series from a payload in a single pass over
// its entry list. Entries without a textual timestamp fall back to the unix
// time formatted by the caller's display layer, so DtTxt is used as-is.
func BuildSeries(p *Payload) Series {
	s := Series{
		Dates: []string{},
		Temps: []float64{},
	}
	if p == nil {
		return s
	}

	for _, e := range p.List {
		s.Dates = append(s.Dates, e.DtTxt)
		s.Temps = append(s.Temps, e.Main.Temp)
	}
	return s
}

// SeriesStats summarizes a temperature series for axis scaling.
type SeriesStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// ComputeStats returns min, max and mean of the given temperatures.
// The second return value is false for an empty series.
func ComputeStats(temps []float64) (SeriesStats, bool) {
	if len(temps) == 0 {
		return SeriesStats{}, false
	}

	stats := SeriesStats{
		Min: temps[0],
		Max: temps[0],
	}

	var sum float64
	for _, t := range temps {
		sum += t
		if t < stats.Min {
			stats.Min = t
		}
		if t > stats.Max {
			stats.Max = t
		}
	}
	stats.Avg = sum / float64(len(temps))

	return stats, true
}
