package forecast

import (
	"errors"
	"strings"
)

// ErrEmptyLocation is returned when a location string contains no city.
var ErrEmptyLocation = errors.New("location must contain a city name")

// Location represents a place for which forecasts are fetched.
// City must be provided; Country is optional.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// ParseLocation splits user-entered "City, Country" text into a Location.
// The country part is optional and surrounding whitespace is ignored.
func ParseLocation(s string) (Location, error) {
	parts := strings.SplitN(s, ",", 2)

	loc := Location{City: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		loc.Country = strings.TrimSpace(parts[1])
	}

	if loc.City == "" {
		return Location{}, ErrEmptyLocation
	}
	return loc, nil
}

// Query returns the "City,Country" form most weather APIs accept as a
// location query.
func (l Location) Query() string {
	if l.Country == "" {
		return l.City
	}
	return l.City + "," + l.Country
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	return l.Query()
}
