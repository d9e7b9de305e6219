package foursquare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minute-planner/models"
	"minute-planner/util"
)

const resourcesDir = "../../resources"

func TestMock_ServesFixtures(t *testing.T) {
	client := NewFoursquareApiClientMock(resourcesDir)

	search, err := client.SearchPlaces(context.Background(), models.PlaceSearchParams{LL: "1,2"})
	require.NoError(t, err)
	results, ok := util.DecodeJSON(search)
	require.True(t, ok)
	list, ok := util.ListAt(results, "results")
	require.True(t, ok)
	assert.NotEmpty(t, list)

	geo, err := client.GeocodeSearch(context.Background(), "Paris")
	require.NoError(t, err)
	v, _ := util.DecodeJSON(geo)
	_, ok = util.FloatAt(v, "results", 0, "geocodes", "main", "latitude")
	assert.True(t, ok)

	_, err = client.TrendingPlaces(context.Background(), "1,2", 6)
	assert.NoError(t, err)
}

func TestMock_MissingResources(t *testing.T) {
	client := NewFoursquareApiClientMock(t.TempDir())

	raw, err := client.SearchPlaces(context.Background(), models.PlaceSearchParams{})

	assert.Error(t, err)
	assert.Nil(t, raw)
}
