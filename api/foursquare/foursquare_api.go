package foursquare

import (
	"context"
	"encoding/json"

	"minute-planner/models"
)

// FoursquareAPI is the place-search and geocoding collaborator. Responses are returned
// undecoded; their shape is interpreted (and defaulted) by the places service.
type FoursquareAPI interface {
	SearchPlaces(ctx context.Context, params models.PlaceSearchParams) (json.RawMessage, error)
	TrendingPlaces(ctx context.Context, ll string, limit int) (json.RawMessage, error)
	GeocodeSearch(ctx context.Context, name string) (json.RawMessage, error)
}
