package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"minute-planner/logger"
)

type PlaceRoutes interface {
	SearchPlaces(w http.ResponseWriter, r *http.Request)
	TrendingPlaces(w http.ResponseWriter, r *http.Request)
	NearbyPlaces(w http.ResponseWriter, r *http.Request)
	PlacesMap(w http.ResponseWriter, r *http.Request)
	Geocode(w http.ResponseWriter, r *http.Request)
}

type PlannerRoutes interface {
	BuildItinerary(w http.ResponseWriter, r *http.Request)
	ParsePreferences(w http.ResponseWriter, r *http.Request)
}

type SystemRoutes interface {
	Health(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
	Config(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	placeHandler   PlaceRoutes
	plannerHandler PlannerRoutes
	systemHandler  SystemRoutes
	router         *mux.Router
	requestTimeout time.Duration
	log            logger.Logger
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	placeHandler PlaceRoutes,
	plannerHandler PlannerRoutes,
	systemHandler SystemRoutes,
	router *mux.Router,
	requestTimeout time.Duration,
	log logger.Logger) *Router {
	return &Router{
		placeHandler:   placeHandler,
		plannerHandler: plannerHandler,
		systemHandler:  systemHandler,
		router:         router,
		requestTimeout: requestTimeout,
		log:            log.With(map[string]interface{}{"component": "router"}),
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(
		requestIDMiddleware,
		corsMiddleware,
		metricsMiddleware,
		loggingMiddleware(r.log),
		timeoutMiddleware(r.requestTimeout),
	)

	api := r.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", r.systemHandler.Health).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ping", r.systemHandler.Ping).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/config", r.systemHandler.Config).Methods(http.MethodGet, http.MethodOptions)

	// expects ?ll={lat,lng}&query=&limit=&radius={meters}&categories=
	api.HandleFunc("/places", r.placeHandler.SearchPlaces).Methods(http.MethodGet, http.MethodOptions)
	// expects ?region={name}&limit=
	api.HandleFunc("/places/trending", r.placeHandler.TrendingPlaces).Methods(http.MethodGet, http.MethodOptions)
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	api.HandleFunc("/places/nearby", r.placeHandler.NearbyPlaces).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/places/map", r.placeHandler.PlacesMap).Methods(http.MethodGet, http.MethodOptions)
	// expects ?name={place name}
	api.HandleFunc("/geocode", r.placeHandler.Geocode).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/itinerary", r.plannerHandler.BuildItinerary).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/preferences/parse", r.plannerHandler.ParsePreferences).Methods(http.MethodPost, http.MethodOptions)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}
