package controller

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForFailure maps the envelope message of a failed service call onto
// an HTTP status, the way the services phrase their failures.
func statusForFailure(message string) int {
	switch {
	case message == "validation failed":
		return http.StatusBadRequest
	case strings.Contains(message, "not found"):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
