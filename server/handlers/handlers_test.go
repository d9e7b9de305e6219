package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minute-planner/api/foursquare"
	"minute-planner/api/huggingface"
	"minute-planner/apperrors"
	"minute-planner/config"
	"minute-planner/dao/redis"
	"minute-planner/db"
	"minute-planner/logger"
	"minute-planner/models"
	services "minute-planner/service"
)

const resourcesDir = "../../resources"

var errUpstream = apperrors.Upstream("foursquare", errors.New("dial tcp 10.0.0.1:443: connection refused"))

func newPlacesService(t *testing.T) *services.PlacesService {
	t.Helper()
	return services.NewPlacesService(
		redis.NewRedisPlaceDAO(db.NewMockRedisClient()),
		foursquare.NewFoursquareApiClientMock(resourcesDir),
		config.CacheConfig{SearchTTL: time.Minute, TrendingTTL: time.Minute, GeocodeTTL: time.Minute},
		logger.NewTestLogger(t),
	)
}

func newTripAnalysisService(t *testing.T) *services.TripAnalysisService {
	t.Helper()
	hf := huggingface.NewHuggingFaceApiClientMock(resourcesDir)
	log := logger.NewTestLogger(t)
	return services.NewTripAnalysisService(
		services.NewPreferenceExtractor(hf, log),
		services.NewSentimentAnnotator(hf, log),
		services.NewEntityExtractor(hf, log),
		log,
	)
}

// failingPlaces fails every call with err.
type failingPlaces struct{ err error }

func (f failingPlaces) SearchPlaces(context.Context, models.PlaceSearchParams) ([]models.NormalizedPlace, error) {
	return nil, f.err
}

func (f failingPlaces) TrendingPlaces(context.Context, string, int) ([]models.NormalizedPlace, error) {
	return nil, f.err
}

func (f failingPlaces) Geocode(context.Context, string) (*models.Coordinate, error) {
	return nil, f.err
}

func (f failingPlaces) NearbyPlaces(context.Context, float64, float64, float64) ([]models.NormalizedPlace, error) {
	return nil, f.err
}

func (f failingPlaces) PlacesMap(context.Context, models.PlaceSearchParams, io.Writer) error {
	return f.err
}

// failingPlanner fails every analysis with err.
type failingPlanner struct{ err error }

func (f failingPlanner) AnalyzePreferences(context.Context, string) (*models.PreferenceAnalysis, error) {
	return nil, f.err
}

func (f failingPlanner) BuildItinerary(_ context.Context, places []models.PlaceRef) models.Itinerary {
	return services.BuildItinerary(places)
}

func serve(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h(rr, req)
	require.NotEmpty(t, rr.Header().Get("Content-Type"))
	return rr
}
