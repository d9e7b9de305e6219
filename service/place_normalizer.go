package services

import (
	"encoding/json"

	"minute-planner/models"
	"minute-planner/util"
)

// NormalizePlaces maps a place-search response onto NormalizedPlace records, one per
// entry of its results list and in the same order. Missing or mistyped fields become
// null; a response without a results list yields an empty, non-nil slice.
func NormalizePlaces(raw json.RawMessage) []models.NormalizedPlace {
	doc, _ := util.DecodeJSON(raw)
	results, _ := util.ListAt(doc, "results")

	places := make([]models.NormalizedPlace, 0, len(results))
	for _, record := range results {
		places = append(places, normalizePlace(record))
	}
	return places
}

func normalizePlace(record interface{}) models.NormalizedPlace {
	duration, _ := util.Dig(record, "duration")
	return models.NormalizedPlace{
		ID:        util.StringPtrAt(record, "fsq_id"),
		Name:      util.StringPtrAt(record, "name"),
		Latitude:  util.FloatPtrAt(record, "geocodes", "main", "latitude"),
		Longitude: util.FloatPtrAt(record, "geocodes", "main", "longitude"),
		Category:  util.StringPtrAt(record, "categories", 0, "name"),
		Rating:    util.FloatPtrAt(record, "rating"),
		Price:     util.IntPtrAt(record, "price"),
		Duration:  duration,
	}
}
