package foursquare

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"minute-planner/api"
	"minute-planner/apperrors"
	"minute-planner/models"
)

var ErrMissingAPIKey = errors.New("FOURSQUARE_API_KEY not set")

// FoursquareApiClient embeds the common HTTPClient
type FoursquareApiClient struct {
	*api.HTTPClient
	apiKey string
}

func NewFoursquareApiClient(httpClient *api.HTTPClient, apiKey string) *FoursquareApiClient {
	return &FoursquareApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}
}

// SearchPlaces searches places around params.LL.
func (c *FoursquareApiClient) SearchPlaces(ctx context.Context, params models.PlaceSearchParams) (json.RawMessage, error) {
	return c.get(ctx, "/search", params.ToValues())
}

// TrendingPlaces lists trending places around ll.
func (c *FoursquareApiClient) TrendingPlaces(ctx context.Context, ll string, limit int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("ll", ll)
	q.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/trending", q)
}

// GeocodeSearch runs a single-result search for a free-text place name.
func (c *FoursquareApiClient) GeocodeSearch(ctx context.Context, name string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("query", name)
	q.Set("limit", "1")
	return c.get(ctx, "/search", q)
}

func (c *FoursquareApiClient) get(ctx context.Context, endpoint string, q url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, apperrors.Upstream(c.Provider, ErrMissingAPIKey)
	}
	var response json.RawMessage
	headers := map[string]string{"Authorization": c.apiKey}
	if err := c.Request(ctx, http.MethodGet, endpoint, q, headers, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}
