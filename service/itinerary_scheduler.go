package services

import (
	"time"

	"minute-planner/config"
	"minute-planner/models"
)

// BuildItinerary gives the k-th place the slot starting at the day anchor plus k slot
// durations. Times are wall-clock "HH:MM" and wrap past midnight.
func BuildItinerary(places []models.PlaceRef) models.Itinerary {
	entries := make([]models.ItineraryEntry, 0, len(places))
	start := time.Date(2000, time.January, 1, config.ITINERARY_DAY_START_HOUR, 0, 0, 0, time.UTC)
	for k, p := range places {
		entries = append(entries, models.ItineraryEntry{
			Name:     p.Name,
			Location: p.Location,
			Time:     start.Add(time.Duration(k) * config.ITINERARY_SLOT_DURATION).Format("15:04"),
		})
	}
	return models.Itinerary{Itinerary: entries}
}
