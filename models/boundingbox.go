package models

import "fmt"

// BoundingBox is the smallest lat/lng rectangle holding a set of places, with its center.
type BoundingBox struct {
	Lat    float64 `json:"lat"`
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	Lng    float64 `json:"lng"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// BoundingBoxOf ignores places without coordinates and reports false when none are left.
func BoundingBoxOf(places []NormalizedPlace) (BoundingBox, bool) {
	var b BoundingBox
	found := false
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		lat, lng := *p.Latitude, *p.Longitude
		if !found {
			b = BoundingBox{LatMin: lat, LatMax: lat, LngMin: lng, LngMax: lng}
			found = true
			continue
		}
		b.LatMin = min(b.LatMin, lat)
		b.LatMax = max(b.LatMax, lat)
		b.LngMin = min(b.LngMin, lng)
		b.LngMax = max(b.LngMax, lng)
	}
	if !found {
		return BoundingBox{}, false
	}
	b.Lat = (b.LatMin + b.LatMax) / 2
	b.Lng = (b.LngMin + b.LngMax) / 2
	return b, true
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("lat %.4f..%.4f, lng %.4f..%.4f", b.LatMin, b.LatMax, b.LngMin, b.LngMax)
}
