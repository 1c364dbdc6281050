package forecast

// Payload is the raw multi-point forecast response, shaped after the
// OpenWeatherMap 5-day/3-hour forecast document: a city header plus a `list`
// of per-timestamp entries. Providers with other wire formats convert into
// this shape.
type Payload struct {
	Cod  string  `json:"cod,omitempty"`
	Cnt  int     `json:"cnt,omitempty"`
	List []Entry `json:"list"`
	City City    `json:"city"`
}

// City identifies the place the payload describes.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Entry is one forecast point.
type Entry struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"`
	Main    Metrics     `json:"main"`
	Weather []Condition `json:"weather,omitempty"`
	Wind    Wind        `json:"wind,omitempty"`
}

// Metrics holds the numeric readings of a forecast point.
type Metrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like,omitempty"`
	TempMin   float64 `json:"temp_min,omitempty"`
	TempMax   float64 `json:"temp_max,omitempty"`
	Pressure  float64 `json:"pressure,omitempty"`
	Humidity  float64 `json:"humidity,omitempty"`
}

// Condition is a short textual description of the expected weather.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Wind holds the expected wind readings.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg,omitempty"`
}
