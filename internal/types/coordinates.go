package types

import "strconv"

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// String formats the pair with the shortest representation that round-trips,
// e.g. "lat=48.8566, lon=2.3522"
func (c Coords) String() string {
	return "lat=" + strconv.FormatFloat(c.Latitude, 'f', -1, 64) +
		", lon=" + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
