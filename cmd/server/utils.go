package main

import (
	"encoding/json"
	"net/http"
)

// Response texts are part of the deployed wire format and must stay
// byte-identical, including the "probelm" typo.
const (
	errNotAuthorized = "Not authorized to make this request."
	errSaveFailed    = "Failed to save form data. Try resubmitting, or email support@oviohub.com if the probelm persists."
)

// errorResponse is the error payload shape
type errorResponse struct {
	Error string `json:"Error"`
}

// statusResponse is the success payload shape
type statusResponse struct {
	Status string `json:"status"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeSuccess writes the success response
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}
