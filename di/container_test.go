package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minute-planner/api/foursquare"
	"minute-planner/config"
	"minute-planner/db"
	"minute-planner/logger"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "MinutePlanner API", Environment: env},
		Server: config.ServerConfig{Port: 8080, RequestTimeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Cache:  config.CacheConfig{SearchTTL: time.Minute, TrendingTTL: time.Minute, GeocodeTTL: time.Minute},
		Refresher: config.RefresherConfig{
			Interval: time.Minute,
			Regions:  []string{"italy"},
			Limit:    6,
		},
		Maptiler: config.MaptilerConfig{StyleURL: "https://api.maptiler.com/maps/streets/style.json"},
	}
}

func TestNewContainer_Dev(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", filepath.Dir(wd))

	c, err := NewContainer(context.Background(), testConfig("dev"), logger.NewTestLogger(t))
	require.NoError(t, err)

	assert.IsType(t, &db.MockRedisClient{}, c.RedisClient)
	assert.IsType(t, &foursquare.FoursquareApiClientMock{}, c.FoursquareAPI)

	c.Router.RegisterRoutes()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/preferences/parse", strings.NewReader(`{"text": "Rome with 2 friends"}`))
	c.MuxRouter.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"destination":"Rome"`)
}

func TestNewContainer_ProdWiresRealClients(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig("prod")
	cfg.Redis.Address = mr.Addr()
	cfg.Foursquare = config.FoursquareConfig{BaseURL: "http://127.0.0.1:0", APIKey: "k", Timeout: time.Second}

	c, err := NewContainer(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)

	assert.IsType(t, &db.GeoRedisClient{}, c.RedisClient)
	assert.IsType(t, &foursquare.FoursquareApiClient{}, c.FoursquareAPI)
}

func TestNewContainer_ProdRedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg := testConfig("prod")
	cfg.Redis.Address = addr

	_, err := NewContainer(context.Background(), cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}
