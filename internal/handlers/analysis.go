package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aeroscope/core/internal/models"
)

type analysisRequest struct {
	Pathway     models.Pathway `json:"pathway"`
	Scenario    string         `json:"scenario"`
	Constraints string         `json:"constraints"`
}

// AnalysisResponse tags each screening result with a request id so the
// client can discard responses from superseded requests.
type AnalysisResponse struct {
	RequestID string               `json:"requestId"`
	Result    models.PathwayResult `json:"result"`
}

// RunAnalysis screens a fuel pathway against the scenario and constraint
// text. The engine is pure, so overlapping requests cannot contaminate
// each other server-side; an optional configured delay simulates the
// product's analysis latency.
func (a *API) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if a.analysisDelay > 0 {
		time.Sleep(a.analysisDelay)
	}

	requestID := uuid.NewString()
	result := a.engine.Evaluate(req.Pathway, req.Scenario, req.Constraints)

	logrus.WithFields(logrus.Fields{
		"requestId": requestID,
		"pathway":   result.Pathway,
	}).Debug("pathway analysis complete")

	writeJSON(w, r, http.StatusOK, AnalysisResponse{
		RequestID: requestID,
		Result:    result,
	})
}
