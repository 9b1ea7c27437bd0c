package model

// Place is a nearby care facility returned by the geodata lookup.
type Place struct {
	Name string
	Kind string // amenity tag, e.g. "clinic", "hospital", "social_facility"
	Lat  float64
	Lon  float64
}
