package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"minute-planner/apperrors"
	"minute-planner/config"
	"minute-planner/logger"
	"minute-planner/models"
)

const (
	LL_QUERY_ARG         = "ll"
	QUERY_QUERY_ARG      = "query"
	LIMIT_QUERY_ARG      = "limit"
	RADIUS_QUERY_ARG     = "radius"
	CATEGORIES_QUERY_ARG = "categories"
	REGION_QUERY_ARG     = "region"
	NAME_QUERY_ARG       = "name"
	LAT_QUERY_ARG        = "lat"
	LON_QUERY_ARG        = "lon"
)

// PlacesService is the place lookup surface the handler serves.
type PlacesService interface {
	SearchPlaces(ctx context.Context, params models.PlaceSearchParams) ([]models.NormalizedPlace, error)
	TrendingPlaces(ctx context.Context, region string, limit int) ([]models.NormalizedPlace, error)
	Geocode(ctx context.Context, name string) (*models.Coordinate, error)
	NearbyPlaces(ctx context.Context, lat, lon, radiusKm float64) ([]models.NormalizedPlace, error)
	PlacesMap(ctx context.Context, params models.PlaceSearchParams, w io.Writer) error
}

type PlaceHandler struct {
	placesService PlacesService
	log           logger.Logger
}

func NewPlaceHandler(placesService PlacesService, log logger.Logger) *PlaceHandler {
	return &PlaceHandler{
		placesService: placesService,
		log:           log.With(map[string]interface{}{"component": "place_handler"}),
	}
}

// SearchPlaces handles GET /api/places?ll=&query=&limit=&radius=&categories=
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	places, err := h.placesService.SearchPlaces(r.Context(), params)
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	writeJSON(w, http.StatusOK, places, h.log)
}

// TrendingPlaces handles GET /api/places/trending?region=&limit=
func (h *PlaceHandler) TrendingPlaces(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	limit, err := parseArgInt(vals, LIMIT_QUERY_ARG, config.TRENDING_DEFAULT_LIMIT)
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	places, err := h.placesService.TrendingPlaces(r.Context(), vals.Get(REGION_QUERY_ARG), limit)
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	writeJSON(w, http.StatusOK, places, h.log)
}

// NearbyPlaces handles GET /api/places/nearby?lat=&lon=&radius= with radius in km.
func (h *PlaceHandler) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, err := parseNearbyArgs(r.URL.Query())
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	places, err := h.placesService.NearbyPlaces(r.Context(), lat, lon, radius)
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	writeJSON(w, http.StatusOK, places, h.log)
}

// PlacesMap handles GET /api/places/map with the same args as SearchPlaces.
func (h *PlaceHandler) PlacesMap(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	var page bytes.Buffer
	if err := h.placesService.PlacesMap(r.Context(), params, &page); err != nil {
		writeError(w, r, err, h.log)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := page.WriteTo(w); err != nil {
		h.log.WithError(err).Error("Error writing map page", nil)
	}
}

// Geocode handles GET /api/geocode?name=
func (h *PlaceHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	c, err := h.placesService.Geocode(r.Context(), r.URL.Query().Get(NAME_QUERY_ARG))
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

func parseSearchParams(vals url.Values) (models.PlaceSearchParams, error) {
	limit, err := parseArgInt(vals, LIMIT_QUERY_ARG, config.PLACES_DEFAULT_LIMIT)
	if err != nil {
		return models.PlaceSearchParams{}, err
	}
	params := models.PlaceSearchParams{
		LL:         vals.Get(LL_QUERY_ARG),
		Query:      vals.Get(QUERY_QUERY_ARG),
		Limit:      limit,
		Categories: vals.Get(CATEGORIES_QUERY_ARG),
	}
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err := parseArgInt(vals, RADIUS_QUERY_ARG, 0)
		if err != nil {
			return models.PlaceSearchParams{}, err
		}
		params.Radius = &radius
	}
	return params, nil
}

func parseNearbyArgs(vals url.Values) (lat, lon, radius float64, err error) {
	if lat, err = parseArgFloat64(vals, LAT_QUERY_ARG); err != nil {
		return
	}
	if lon, err = parseArgFloat64(vals, LON_QUERY_ARG); err != nil {
		return
	}
	if radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG); err != nil {
		return
	}
	if radius > float64(config.PLACES_MAX_RADIUS_METERS)/1000 {
		err = apperrors.Invalid("invalid radius: must be at most %d km", config.PLACES_MAX_RADIUS_METERS/1000)
	}
	return
}
