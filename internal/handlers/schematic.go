package handlers

import "net/http"

type schematicRequest struct {
	PartName string `json:"partName"`
	FuelType string `json:"fuelType"`
}

// SchematicResponse reports whether generated content is available. The
// frontend renders its placeholder either way.
type SchematicResponse struct {
	Available bool   `json:"available"`
	Content   string `json:"content,omitempty"`
}

// Schematic proxies the generative-content integration. The integration is
// inert, so this consistently reports unavailable; the endpoint exists so
// the frontend contract does not change if it is ever wired.
func (a *API) Schematic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req schematicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var resp SchematicResponse
	if a.schematics != nil {
		resp.Content, resp.Available = a.schematics.Generate(req.PartName, req.FuelType)
	}
	writeJSON(w, r, http.StatusOK, resp)
}
