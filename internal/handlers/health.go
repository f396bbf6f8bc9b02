package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

var startTime = time.Now()

// Health reports liveness; no dependencies are probed since the service
// holds everything in memory.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "aeroscope-api",
		Uptime:    time.Since(startTime).String(),
		Details: map[string]string{
			"go_version": runtime.Version(),
			"num_cpu":    strconv.Itoa(runtime.NumCPU()),
		},
	}

	writeJSON(w, r, http.StatusOK, response)
}
