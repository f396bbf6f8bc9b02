package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aeroscope/core/internal/models"
)

// AirplaneSummary is one roster entry with its badge counts.
type AirplaneSummary struct {
	models.Airplane
	RiskCount models.RiskCount `json:"riskCount"`
}

// FleetResponse is the roster plus the current selection.
type FleetResponse struct {
	SelectedID string            `json:"selectedId"`
	Airplanes  []AirplaneSummary `json:"airplanes"`
}

// Airplanes returns the roster with per-airplane risk counts and the
// selected airplane id.
func (a *API) Airplanes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	airplanes := a.fleet.Airplanes()
	summaries := make([]AirplaneSummary, len(airplanes))
	for i, airplane := range airplanes {
		summaries[i] = AirplaneSummary{
			Airplane:  airplane,
			RiskCount: a.fleet.RiskCount(airplane.ID),
		}
	}

	writeJSON(w, r, http.StatusOK, FleetResponse{
		SelectedID: a.fleet.SelectedID(),
		Airplanes:  summaries,
	})
}

// RiskRows returns the per-component risk view for ?id=. Unknown ids fall
// back to the first airplane rather than erroring.
func (a *API) RiskRows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows := a.fleet.RiskRows(r.URL.Query().Get("id"))
	if rows == nil {
		rows = []models.SupplierRiskRow{}
	}
	writeJSON(w, r, http.StatusOK, rows)
}

type selectRequest struct {
	AirplaneID string `json:"airplaneId"`
}

// SelectAirplane sets the active airplane pointer.
func (a *API) SelectAirplane(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req selectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a.fleet.SelectAirplane(req.AirplaneID)
	writeJSON(w, r, http.StatusOK, map[string]string{"selectedId": req.AirplaneID})
}

type reassignRequest struct {
	AirplaneID    string `json:"airplaneId"`
	Component     string `json:"component"`
	NewSupplierID string `json:"newSupplierId"`
}

// ReassignSupplier swaps one component's supplier on one airplane and
// broadcasts the updated fleet.
func (a *API) ReassignSupplier(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req reassignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ok := a.fleet.ReassignSupplier(req.AirplaneID, req.Component, req.NewSupplierID)
	if ok {
		logrus.WithFields(logrus.Fields{
			"airplane":  req.AirplaneID,
			"component": req.Component,
			"supplier":  req.NewSupplierID,
		}).Info("supplier reassigned")
		a.broadcastFleet()
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"ok": ok})
}

type replaceRequest struct {
	AirplaneID    string `json:"airplaneId"`
	OldComponent  string `json:"oldComponent"`
	NewComponent  string `json:"newComponent"`
	NewSupplierID string `json:"newSupplierId"`
}

// ReplaceComponent swaps a component outright for a compatible alternative
// with its chosen supplier, and broadcasts the updated fleet.
func (a *API) ReplaceComponent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req replaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ok := a.fleet.ReplaceComponent(req.AirplaneID, req.OldComponent, req.NewComponent, req.NewSupplierID)
	if ok {
		logrus.WithFields(logrus.Fields{
			"airplane":     req.AirplaneID,
			"oldComponent": req.OldComponent,
			"newComponent": req.NewComponent,
			"supplier":     req.NewSupplierID,
		}).Info("component replaced")
		a.broadcastFleet()
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"ok": ok})
}

func (a *API) broadcastFleet() {
	airplanes := a.fleet.Airplanes()
	summaries := make([]AirplaneSummary, len(airplanes))
	for i, airplane := range airplanes {
		summaries[i] = AirplaneSummary{
			Airplane:  airplane,
			RiskCount: a.fleet.RiskCount(airplane.ID),
		}
	}
	a.hub.Broadcast("fleet_update", summaries)
}
