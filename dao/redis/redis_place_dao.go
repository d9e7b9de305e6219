package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"minute-planner/config"
	"minute-planner/db"
	"minute-planner/models"
)

// ErrPlaceNotIndexable is returned for places lacking an id or coordinates.
var ErrPlaceNotIndexable = errors.New("place has no id or coordinates")

// RedisPlaceDAO caches normalized places and keeps a geo index of every place seen.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// UpsertPlace stores the place as a geolocation with the place's JSON data.
func (dao *RedisPlaceDAO) UpsertPlace(ctx context.Context, p models.NormalizedPlace) error {
	if p.ID == nil || !p.HasCoordinates() {
		return ErrPlaceNotIndexable
	}
	memberKey := fmt.Sprintf(config.PLACES_GEO_MEMBER_FORMAT_V1, *p.ID)
	return dao.client.AddLocationWithJSON(ctx, config.PLACES_GEO_KEY_V1, memberKey, *p.Latitude, *p.Longitude, p)
}

// GetNearbyPlaces retrieves indexed places within radiusKm of (lat, lon), nearest first.
func (dao *RedisPlaceDAO) GetNearbyPlaces(ctx context.Context, lat, lon, radiusKm float64) ([]models.NormalizedPlace, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(ctx, config.PLACES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisPlaceDAO] failed to get places: %w", err)
	}

	places := make([]models.NormalizedPlace, len(placesJSON))
	for i, placeJSON := range placesJSON {
		if err := json.Unmarshal([]byte(placeJSON), &places[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %w", err)
		}
	}
	return places, nil
}

// ListIndexedPlaceIDs returns all place IDs present in the geo index.
func (dao *RedisPlaceDAO) ListIndexedPlaceIDs(ctx context.Context) ([]string, error) {
	pattern := fmt.Sprintf(config.PLACES_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list place geo keys: %w", err)
	}
	prefix := fmt.Sprintf(config.PLACES_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetSearchResults caches the normalized results of one search.
func (dao *RedisPlaceDAO) SetSearchResults(ctx context.Context, params models.PlaceSearchParams, places []models.NormalizedPlace, ttl time.Duration) error {
	key := fmt.Sprintf(config.PLACES_SEARCH_KEY_FORMAT_V1, params.CacheKey())
	return dao.setJSON(ctx, key, places, ttl)
}

// GetSearchResults returns (nil, false, nil) on a cache miss.
func (dao *RedisPlaceDAO) GetSearchResults(ctx context.Context, params models.PlaceSearchParams) ([]models.NormalizedPlace, bool, error) {
	key := fmt.Sprintf(config.PLACES_SEARCH_KEY_FORMAT_V1, params.CacheKey())
	var places []models.NormalizedPlace
	found, err := dao.getJSON(ctx, key, &places)
	return places, found, err
}

func (dao *RedisPlaceDAO) SetTrendingPlaces(ctx context.Context, region string, limit int, places []models.NormalizedPlace, ttl time.Duration) error {
	return dao.setJSON(ctx, trendingKey(region, limit), places, ttl)
}

// GetTrendingPlaces returns (nil, false, nil) on a cache miss.
func (dao *RedisPlaceDAO) GetTrendingPlaces(ctx context.Context, region string, limit int) ([]models.NormalizedPlace, bool, error) {
	var places []models.NormalizedPlace
	found, err := dao.getJSON(ctx, trendingKey(region, limit), &places)
	return places, found, err
}

// DeleteTrendingPlaces drops a cached trending list so the next read refetches it.
func (dao *RedisPlaceDAO) DeleteTrendingPlaces(ctx context.Context, region string, limit int) error {
	key := trendingKey(region, limit)
	if err := dao.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete trending key %s: %w", key, err)
	}
	return nil
}

func (dao *RedisPlaceDAO) SetGeocode(ctx context.Context, name string, c models.Coordinate, ttl time.Duration) error {
	return dao.setJSON(ctx, fmt.Sprintf(config.GEOCODE_KEY_FORMAT_V1, normalizeName(name)), c, ttl)
}

// GetGeocode returns (nil, nil) on a cache miss.
func (dao *RedisPlaceDAO) GetGeocode(ctx context.Context, name string) (*models.Coordinate, error) {
	var c models.Coordinate
	found, err := dao.getJSON(ctx, fmt.Sprintf(config.GEOCODE_KEY_FORMAT_V1, normalizeName(name)), &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (dao *RedisPlaceDAO) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := dao.client.Set(ctx, key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (dao *RedisPlaceDAO) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(str), v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func trendingKey(region string, limit int) string {
	return fmt.Sprintf(config.PLACES_TRENDING_KEY_FORMAT_V1, normalizeName(region), limit)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
