package handlers

import (
	"net/http"
	"net/url"

	"minute-planner/config"
	"minute-planner/logger"
)

type SystemHandler struct {
	app      config.AppConfig
	maptiler config.MaptilerConfig
	log      logger.Logger
}

func NewSystemHandler(app config.AppConfig, maptiler config.MaptilerConfig, log logger.Logger) *SystemHandler {
	return &SystemHandler{
		app:      app,
		maptiler: maptiler,
		log:      log.With(map[string]interface{}{"component": "system_handler"}),
	}
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.app.Name,
	}, h.log)
}

// Ping handles GET /api/ping
func (h *SystemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"}, h.log)
}

// Config handles GET /api/config, giving the client its map style URL.
func (h *SystemHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"maptiler_url": h.maptiler.StyleURL + "?key=" + url.QueryEscape(h.maptiler.APIKey),
	}, h.log)
}
