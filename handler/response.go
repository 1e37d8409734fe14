package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Message  string `json:"message"`
	LookupID string `json:"lookup_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

func WriteError(w http.ResponseWriter, msg string, code int) {
	WriteJSON(w, ErrorResponse{Message: msg}, code)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]any{"status": "ok"}, http.StatusOK)
}
