package foursquare

import (
	"context"
	"encoding/json"
	"path/filepath"

	"minute-planner/config"
	"minute-planner/models"
	"minute-planner/util"
)

// FoursquareApiClientMock serves canned responses from the resources directory.
type FoursquareApiClientMock struct {
	resourcesDir string
}

func NewFoursquareApiClientMock(resourcesDir string) *FoursquareApiClientMock {
	return &FoursquareApiClientMock{resourcesDir: resourcesDir}
}

func (c *FoursquareApiClientMock) SearchPlaces(ctx context.Context, params models.PlaceSearchParams) (json.RawMessage, error) {
	return util.ReadRawJSON(filepath.Join(c.resourcesDir, config.PLACES_SEARCH_RESPONSE_RESOURCE))
}

func (c *FoursquareApiClientMock) TrendingPlaces(ctx context.Context, ll string, limit int) (json.RawMessage, error) {
	return util.ReadRawJSON(filepath.Join(c.resourcesDir, config.PLACES_TRENDING_RESPONSE_RESOURCE))
}

func (c *FoursquareApiClientMock) GeocodeSearch(ctx context.Context, name string) (json.RawMessage, error) {
	return util.ReadRawJSON(filepath.Join(c.resourcesDir, config.GEOCODE_RESPONSE_RESOURCE))
}
