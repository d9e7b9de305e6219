package models

import (
	"strconv"
	"strings"

	"minute-planner/apperrors"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// String formats the coordinate the way the place-search provider expects ("lat,lng").
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// ParseCoordinate parses "lat,lng", e.g. "28.6139,77.2090".
func ParseCoordinate(ll string) (Coordinate, error) {
	parts := strings.Split(ll, ",")
	if len(parts) != 2 {
		return Coordinate{}, apperrors.Invalid("ll must be formatted as lat,lng")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, apperrors.Invalid("ll has an invalid latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, apperrors.Invalid("ll has an invalid longitude")
	}
	c := Coordinate{Latitude: lat, Longitude: lng}
	if err := Validate(c); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}
