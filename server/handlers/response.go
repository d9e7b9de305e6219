package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"minute-planner/apperrors"
	"minute-planner/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, log logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Error encoding response", nil)
	}
}

// writeError maps err to its status. Server side failures are logged with their cause;
// the client only sees the public message.
func writeError(w http.ResponseWriter, r *http.Request, err error, log logger.Logger) {
	status, message := apperrors.HTTPStatus(err)
	fields := map[string]interface{}{
		"path":   r.URL.Path,
		"status": status,
	}
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed", fields)
	} else {
		log.WithError(err).Debug("Request rejected", fields)
	}
	writeJSON(w, status, errorResponse{Detail: message}, log)
}

// decodeBody decodes a JSON request body of at most maxBodyBytes.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Invalid("invalid request body: %v", err)
	}
	return nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	if s == "" {
		return 0, apperrors.MissingField(name)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.Invalid("invalid %s: must be a number", name)
	}
	return f, nil
}

// parseArgInt returns def when name is absent.
func parseArgInt(vals url.Values, name string, def int) (int, error) {
	s := vals.Get(name)
	if s == "" {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.Invalid("invalid %s: must be an integer", name)
	}
	return i, nil
}
