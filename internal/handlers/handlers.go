// Package handlers provides the JSON endpoints consumed by the browser
// frontend. It defines the routing surface, response formatting, and error
// handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aeroscope/core/internal/catalog"
	"github.com/aeroscope/core/internal/fleet"
	"github.com/aeroscope/core/internal/pathway"
	"github.com/aeroscope/core/internal/schematic"
	"github.com/aeroscope/core/internal/ws"
)

// API bundles the handler set with its collaborators. The hub and
// schematic service are optional; the catalog, store and engine are not.
type API struct {
	catalog       *catalog.Catalog
	fleet         *fleet.Store
	engine        *pathway.Engine
	hub           *ws.Hub
	schematics    *schematic.Service
	analysisDelay time.Duration
}

// New wires the handler set. Missing core collaborators are a wiring
// defect, so this fails fast rather than deferring to request time.
func New(c *catalog.Catalog, st *fleet.Store, eng *pathway.Engine, hub *ws.Hub, sch *schematic.Service, analysisDelay time.Duration) *API {
	if c == nil || st == nil || eng == nil {
		panic("handlers: New requires a catalog, fleet store and pathway engine")
	}
	return &API{
		catalog:       c,
		fleet:         st,
		engine:        eng,
		hub:           hub,
		schematics:    sch,
		analysisDelay: analysisDelay,
	}
}

// writeJSON encodes the payload. ?pretty=true indents the output for
// debugging from the browser.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// decodeJSON reads a request body into dst, reporting a client error on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
