package models

// PlaceRef is one stop the user picked, in visiting order.
type PlaceRef struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

type ItineraryEntry struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

type Itinerary struct {
	Itinerary []ItineraryEntry `json:"itinerary"`
}
