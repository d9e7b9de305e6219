package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"sort"
	"sync"
	"time"
)

const earthRadiusKm = 6371.0

// MockRedisClient is an in-memory RedisClient used outside prod and in tests.
type MockRedisClient struct {
	data    map[string]string
	expires map[string]time.Time
	geoData map[string]map[string]GeoLoc
	mu      sync.RWMutex
	now     func() time.Time
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expires: make(map[string]time.Time),
		geoData: make(map[string]map[string]GeoLoc),
		now:     time.Now,
	}
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	if ttl > 0 {
		m.expires[key] = m.now().Add(ttl)
	} else {
		delete(m.expires, key)
	}
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.alive(key) {
		return "", ErrCacheMiss
	}
	return m.data[key], nil
}

// alive must be called with the lock held.
func (m *MockRedisClient) alive(key string) bool {
	if _, ok := m.data[key]; !ok {
		return false
	}
	if exp, ok := m.expires[key]; ok && !m.now().Before(exp) {
		return false
	}
	return true
}

func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	delete(m.expires, memberKey)
	return nil
}

// GetLocationsWithinRadius filters members by great-circle distance, nearest first.
func (m *MockRedisClient) GetLocationsWithinRadius(ctx context.Context, key string, lat, lon, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		member string
		dist   float64
	}
	var hits []hit
	for member, loc := range m.geoData[key] {
		if d := haversineKm(lat, lon, loc.Latitude, loc.Longitude); d <= radiusKm {
			hits = append(hits, hit{member: member, dist: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].member < hits[j].member
		}
		return hits[i].dist < hits[j].dist
	})

	results := make([]string, 0, len(hits))
	for _, h := range hits {
		if m.alive(h.member) {
			results = append(results, m.data[h.member])
		}
	}
	return results, nil
}

// Keys matches glob patterns the way Redis KEYS does for '*', '?' and '[...]'.
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := []string{}
	for k := range m.data {
		if ok, err := path.Match(pattern, k); err != nil {
			return nil, err
		} else if ok && m.alive(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expires, key)
	for _, members := range m.geoData {
		delete(members, key)
	}
	delete(m.geoData, key)
	return nil
}

func (m *MockRedisClient) Ping(ctx context.Context) error {
	return nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
