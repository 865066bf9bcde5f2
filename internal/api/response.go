package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// APIStatus represents the status of an API response.
type APIStatus string

const (
	// APIStatusOK indicates a request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates a request failed.
	APIStatusError APIStatus = "error"
)

// APIResponse is the standard JSON envelope for all endpoints.
type APIResponse struct {
	Status  APIStatus   `json:"status"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode API response", "error", err)
	}
}

func writeOK(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Status: APIStatusOK, Result: result})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{Status: APIStatusError, Message: message})
}
