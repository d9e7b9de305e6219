package handlers

import (
	"context"
	"fmt"
	"net/http"

	"minute-planner/logger"
	"minute-planner/models"
)

// TripPlanner analyzes preference text and schedules itineraries.
type TripPlanner interface {
	AnalyzePreferences(ctx context.Context, text string) (*models.PreferenceAnalysis, error)
	BuildItinerary(ctx context.Context, places []models.PlaceRef) models.Itinerary
}

type PlannerHandler struct {
	planner TripPlanner
	log     logger.Logger
}

func NewPlannerHandler(planner TripPlanner, log logger.Logger) *PlannerHandler {
	return &PlannerHandler{
		planner: planner,
		log:     log.With(map[string]interface{}{"component": "planner_handler"}),
	}
}

// BuildItinerary handles POST /api/itinerary with a JSON list of {name, location}.
func (h *PlannerHandler) BuildItinerary(w http.ResponseWriter, r *http.Request) {
	var places []models.PlaceRef
	if err := decodeBody(w, r, &places); err != nil {
		writeError(w, r, err, h.log)
		return
	}
	for i, p := range places {
		if err := models.Validate(p); err != nil {
			writeError(w, r, fmt.Errorf("place %d: %w", i, err), h.log)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.planner.BuildItinerary(r.Context(), places), h.log)
}

// ParsePreferences handles POST /api/preferences/parse with {"text": "..."}.
func (h *PlannerHandler) ParsePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.ParsePreferencesRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, h.log)
		return
	}
	if err := models.Validate(req); err != nil {
		writeError(w, r, err, h.log)
		return
	}
	analysis, err := h.planner.AnalyzePreferences(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err, h.log)
		return
	}
	writeJSON(w, http.StatusOK, analysis, h.log)
}
