package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"minute-planner/api"
	"minute-planner/api/foursquare"
	"minute-planner/api/huggingface"
	"minute-planner/config"
	"minute-planner/dao/redis"
	"minute-planner/db"
	"minute-planner/logger"
	"minute-planner/server"
	"minute-planner/server/handlers"
	services "minute-planner/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                   *config.Config
	Logger                   logger.Logger
	RedisClient              db.RedisClient
	RedisPlaceDao            *redis.RedisPlaceDAO
	FoursquareAPI            foursquare.FoursquareAPI
	HuggingFaceAPI           huggingface.HuggingFaceAPI
	PlacesService            *services.PlacesService
	TripAnalysisService      *services.TripAnalysisService
	TrendingRefresherService *services.TrendingRefresherService
	PlaceHandler             *handlers.PlaceHandler
	PlannerHandler           *handlers.PlannerHandler
	SystemHandler            *handlers.SystemHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	MinutePlannerHttpServer  *server.MinutePlannerHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// collaborators are file-backed mocks and Redis is in-memory.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Logger) (*Container, error) {
	log.Info("Initializing container", map[string]interface{}{"env": cfg.App.Environment})

	var redisClient db.RedisClient
	var foursquareApiClient foursquare.FoursquareAPI
	var huggingFaceApiClient huggingface.HuggingFaceAPI

	if !cfg.App.IsProd() {
		log.Info("Using mock redis and mock collaborators", map[string]interface{}{"resources": config.ResourcesDir()})
		redisClient = db.NewMockRedisClient()
		foursquareApiClient = foursquare.NewFoursquareApiClientMock(config.ResourcesDir())
		huggingFaceApiClient = huggingface.NewHuggingFaceApiClientMock(config.ResourcesDir())
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		geoRedisClient, err := db.NewGeoRedisClient(ctx, redisInternalClient, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = geoRedisClient

		foursquareApiClient = foursquare.NewFoursquareApiClient(
			api.NewHTTPClient("foursquare", cfg.Foursquare.BaseURL, cfg.Foursquare.Timeout),
			cfg.Foursquare.APIKey,
		)
		huggingFaceApiClient = huggingface.NewHuggingFaceApiClient(
			api.NewHTTPClient("huggingface", cfg.HuggingFace.BaseURL, cfg.HuggingFace.Timeout),
			cfg.HuggingFace.APIKey,
			huggingface.Models{
				QA:        cfg.HuggingFace.QAModel,
				Sentiment: cfg.HuggingFace.SentimentModel,
				NER:       cfg.HuggingFace.NERModel,
			},
		)
	}

	redisPlaceDao := redis.NewRedisPlaceDAO(redisClient)

	placesService := services.NewPlacesService(redisPlaceDao, foursquareApiClient, cfg.Cache, log)
	tripAnalysisService := services.NewTripAnalysisService(
		services.NewPreferenceExtractor(huggingFaceApiClient, log),
		services.NewSentimentAnnotator(huggingFaceApiClient, log),
		services.NewEntityExtractor(huggingFaceApiClient, log),
		log,
	)
	trendingRefresherService := services.NewTrendingRefresherService(placesService, cfg.Refresher, log)

	placeHandler := handlers.NewPlaceHandler(placesService, log)
	plannerHandler := handlers.NewPlannerHandler(tripAnalysisService, log)
	systemHandler := handlers.NewSystemHandler(cfg.App, cfg.Maptiler, log)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(placeHandler, plannerHandler, systemHandler, muxRouter, cfg.Server.RequestTimeout, log)
	httpServer := server.NewMinutePlannerHttpServer(router, muxRouter, cfg.Server, log)

	return &Container{
		Config:                   cfg,
		Logger:                   log,
		RedisClient:              redisClient,
		RedisPlaceDao:            redisPlaceDao,
		FoursquareAPI:            foursquareApiClient,
		HuggingFaceAPI:           huggingFaceApiClient,
		PlacesService:            placesService,
		TripAnalysisService:      tripAnalysisService,
		TrendingRefresherService: trendingRefresherService,
		PlaceHandler:             placeHandler,
		PlannerHandler:           plannerHandler,
		SystemHandler:            systemHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		MinutePlannerHttpServer:  httpServer,
	}, nil
}
