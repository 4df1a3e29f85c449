package types

// Location is a geocoded place: where it is and what the geocoder calls it
type Location struct {
	Latitude    float64 `json:"latitude" doc:"Latitude in decimal degrees"`
	Longitude   float64 `json:"longitude" doc:"Longitude in decimal degrees"`
	DisplayName string  `json:"displayName" doc:"Canonical place name from the geocoder"`
}

func (l Location) Coords() Coords {
	return NewCoords(l.Latitude, l.Longitude)
}
