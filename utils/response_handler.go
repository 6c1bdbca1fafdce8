package utils

import (
	"encoding/json"
	"net/http"
)

// SendSuccess writes the standard envelope: {"success": true} merged with an
// optional message and the route's payload keys.
func SendSuccess(w http.ResponseWriter, statusCode int, message string, data map[string]any) {
	body := map[string]any{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range data {
		body[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// SendError writes {"success": false, "message": ..., "error": ...}. The raw
// error message is included only when err is non-nil, so 404s carry just the
// message.
func SendError(w http.ResponseWriter, statusCode int, message string, err error) {
	body := map[string]any{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
