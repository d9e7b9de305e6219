package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"minute-planner/api/foursquare"
	"minute-planner/apperrors"
	"minute-planner/config"
	"minute-planner/dao/redis"
	"minute-planner/logger"
	"minute-planner/metrics"
	"minute-planner/models"
	"minute-planner/util"
)

// PlacesService searches the place provider, normalizes the results and keeps them
// cached and geo-indexed in Redis.
type PlacesService struct {
	placeDao      *redis.RedisPlaceDAO
	foursquareApi foursquare.FoursquareAPI
	cache         config.CacheConfig
	log           logger.Logger
}

func NewPlacesService(
	placeDao *redis.RedisPlaceDAO,
	foursquareApi foursquare.FoursquareAPI,
	cache config.CacheConfig,
	log logger.Logger,
) *PlacesService {
	return &PlacesService{
		placeDao:      placeDao,
		foursquareApi: foursquareApi,
		cache:         cache,
		log:           log.With(map[string]interface{}{"component": "places_service"}),
	}
}

// SearchPlaces returns normalized places for params, from cache when possible.
func (ps *PlacesService) SearchPlaces(ctx context.Context, params models.PlaceSearchParams) ([]models.NormalizedPlace, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cached, found, err := ps.placeDao.GetSearchResults(ctx, params)
	if err != nil {
		ps.log.WithError(err).Warn("Search cache read failed", nil)
	}
	if found {
		metrics.CacheLookups.WithLabelValues("search", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("search", "miss").Inc()

	raw, err := ps.foursquareApi.SearchPlaces(ctx, params)
	if err != nil {
		return nil, err
	}
	places := NormalizePlaces(raw)

	if err := ps.placeDao.SetSearchResults(ctx, params, places, ps.cache.SearchTTL); err != nil {
		ps.log.WithError(err).Warn("Search cache write failed", nil)
	}
	ps.indexPlaces(ctx, places)
	return places, nil
}

// TrendingPlaces geocodes region and lists trending places around it.
func (ps *PlacesService) TrendingPlaces(ctx context.Context, region string, limit int) ([]models.NormalizedPlace, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, apperrors.MissingField("region")
	}
	if limit < 1 || limit > config.PLACES_MAX_LIMIT {
		return nil, apperrors.Invalid("invalid limit: must be between 1 and %d", config.PLACES_MAX_LIMIT)
	}

	cached, found, err := ps.placeDao.GetTrendingPlaces(ctx, region, limit)
	if err != nil {
		ps.log.WithError(err).Warn("Trending cache read failed", nil)
	}
	if found {
		metrics.CacheLookups.WithLabelValues("trending", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("trending", "miss").Inc()

	center, err := ps.Geocode(ctx, region)
	if err != nil {
		return nil, err
	}
	raw, err := ps.foursquareApi.TrendingPlaces(ctx, center.String(), limit)
	if err != nil {
		return nil, err
	}
	places := NormalizePlaces(raw)

	if err := ps.placeDao.SetTrendingPlaces(ctx, region, limit, places, ps.cache.TrendingTTL); err != nil {
		ps.log.WithError(err).Warn("Trending cache write failed", nil)
	}
	ps.indexPlaces(ctx, places)
	return places, nil
}

// RefreshTrending drops the cached trending list for region and fetches it again.
func (ps *PlacesService) RefreshTrending(ctx context.Context, region string, limit int) ([]models.NormalizedPlace, error) {
	if err := ps.placeDao.DeleteTrendingPlaces(ctx, region, limit); err != nil {
		ps.log.WithError(err).Warn("Trending cache delete failed", map[string]interface{}{"region": region})
	}
	return ps.TrendingPlaces(ctx, region, limit)
}

// Geocode resolves a free-text place name to the coordinate of the provider's best
// match. Unresolvable names are NOT_FOUND.
func (ps *PlacesService) Geocode(ctx context.Context, name string) (*models.Coordinate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.MissingField("name")
	}

	cached, err := ps.placeDao.GetGeocode(ctx, name)
	if err != nil {
		ps.log.WithError(err).Warn("Geocode cache read failed", nil)
	}
	if cached != nil {
		metrics.CacheLookups.WithLabelValues("geocode", "hit").Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues("geocode", "miss").Inc()

	raw, err := ps.foursquareApi.GeocodeSearch(ctx, name)
	if err != nil {
		return nil, err
	}
	doc, _ := util.DecodeJSON(raw)
	lat, okLat := util.FloatAt(doc, "results", 0, "geocodes", "main", "latitude")
	lng, okLng := util.FloatAt(doc, "results", 0, "geocodes", "main", "longitude")
	if !okLat || !okLng {
		return nil, apperrors.NotFound("Location not found")
	}

	c := models.Coordinate{Latitude: lat, Longitude: lng}
	if err := ps.placeDao.SetGeocode(ctx, name, c, ps.cache.GeocodeTTL); err != nil {
		ps.log.WithError(err).Warn("Geocode cache write failed", nil)
	}
	return &c, nil
}

// NearbyPlaces reads places indexed by earlier searches within radiusKm of (lat, lon).
func (ps *PlacesService) NearbyPlaces(ctx context.Context, lat, lon, radiusKm float64) ([]models.NormalizedPlace, error) {
	if err := models.Validate(models.Coordinate{Latitude: lat, Longitude: lon}); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, apperrors.Invalid("invalid radius: must be greater than 0")
	}
	return ps.placeDao.GetNearbyPlaces(ctx, lat, lon, radiusKm)
}

// PlacesMap renders the results of a search as an HTML map page.
func (ps *PlacesService) PlacesMap(ctx context.Context, params models.PlaceSearchParams, w io.Writer) error {
	places, err := ps.SearchPlaces(ctx, params)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Places near %s", params.LL)
	if params.Query != "" {
		title = fmt.Sprintf("%s near %s", params.Query, params.LL)
	}
	return util.PlotPlaces(title, places, w)
}

// IndexedPlaceCount is the number of places in the geo index.
func (ps *PlacesService) IndexedPlaceCount(ctx context.Context) (int, error) {
	ids, err := ps.placeDao.ListIndexedPlaceIDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (ps *PlacesService) indexPlaces(ctx context.Context, places []models.NormalizedPlace) {
	for _, p := range places {
		err := ps.placeDao.UpsertPlace(ctx, p)
		if errors.Is(err, redis.ErrPlaceNotIndexable) {
			continue
		}
		if err != nil {
			ps.log.WithError(err).Warn("Place index write failed", map[string]interface{}{"place": p.ToString()})
		}
	}
}
