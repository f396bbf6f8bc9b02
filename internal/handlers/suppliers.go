package handlers

import (
	"net/http"

	"github.com/aeroscope/core/internal/models"
)

// Suppliers lists the catalog. With ?component=X it narrows to that
// component's suppliers; ?exclude=ID additionally drops the current
// assignment, which is how the swap sheet requests alternatives.
func (a *API) Suppliers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	component := r.URL.Query().Get("component")
	if component == "" {
		writeJSON(w, r, http.StatusOK, a.catalog.Suppliers())
		return
	}

	suppliers := a.catalog.Alternatives(component, r.URL.Query().Get("exclude"))
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	writeJSON(w, r, http.StatusOK, suppliers)
}

// ComponentResponse describes one component and its documented
// substitutes.
type ComponentResponse struct {
	Component       string                        `json:"component"`
	HasAlternatives bool                          `json:"hasAlternatives"`
	Alternatives    []models.ComponentAlternative `json:"alternatives"`
}

// Components lists the unique component names; with ?name=X it returns the
// substitution entry for that component instead.
func (a *API) Components(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, r, http.StatusOK, a.catalog.Components())
		return
	}

	alternatives := a.catalog.CompatibleComponents(name)
	if alternatives == nil {
		alternatives = []models.ComponentAlternative{}
	}
	writeJSON(w, r, http.StatusOK, ComponentResponse{
		Component:       name,
		HasAlternatives: a.catalog.HasCompatibleComponents(name),
		Alternatives:    alternatives,
	})
}
