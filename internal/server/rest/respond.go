package rest

import (
	"encoding/json"
	"net/http"
)

// envelope is the body shape of every /api/users response. Failures set
// Success=false and Error; create, update and delete failures repeat the
// text in Message.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondData(w http.ResponseWriter, status int, data any, message string) {
	respondJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Error: message})
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Message: message, Error: message})
}
