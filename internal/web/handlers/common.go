package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

var errMissingBound = errors.New("missing range bound")

// rangeBoundLayouts are the accepted formats for start/end query parameters.
var rangeBoundLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseRangeBound parses a date or timestamp query parameter. When the value
// is a bare date and endOfDay is set, the bound is pushed to 23:59:59 so a
// range like start=2024-03-01&end=2024-03-31 covers the whole last day.
func parseRangeBound(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, errMissingBound
	}
	for _, layout := range rangeBoundLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" && endOfDay {
			parsed = parsed.Add(24*time.Hour - time.Second)
		}
		return parsed, nil
	}
	return time.Time{}, errors.New("invalid range bound: " + value)
}

// parseRange reads the start/end query parameters of a request.
func parseRange(r *http.Request) (start, end time.Time, err error) {
	start, err = parseRangeBound(r.URL.Query().Get("start"), false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = parseRangeBound(r.URL.Query().Get("end"), true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
