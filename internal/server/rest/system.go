package rest

import (
	"net/http"
	"time"
)

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var timeNow = time.Now

type healthBody struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type echoBody struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthBody{
		Status:    "OK",
		Message:   "SNS Platform Backend is running",
		Timestamp: timeNow().UTC().Format(isoMillis),
	})
}

func (h *handlers) apiTest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, echoBody{Message: "API is working!", Environment: h.environment})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, messageBody{Message: msgNotFound})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed, messageBody{Message: msgMethodNotAllow})
}
