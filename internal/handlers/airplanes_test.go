package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroscope/core/internal/models"
)

func TestAirplanesHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("returns the roster with risk counts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/airplanes", nil)
		w := httptest.NewRecorder()

		api.Airplanes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp FleetResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.Equal(t, "737max", resp.SelectedID)
		require.Len(t, resp.Airplanes, 3)
		for _, summary := range resp.Airplanes {
			if summary.ID == "737max" {
				assert.Equal(t, 2, summary.RiskCount.High)
				assert.Equal(t, 4, summary.RiskCount.Sustainability)
			}
		}
	})

	t.Run("rejects POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes", nil)
		w := httptest.NewRecorder()

		api.Airplanes(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestRiskRowsHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("returns rows for a known airplane", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/airplanes/risk?id=737max", nil)
		w := httptest.NewRecorder()

		api.RiskRows(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rows []models.SupplierRiskRow
		require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
		assert.Len(t, rows, 12)
	})

	t.Run("unknown id falls back to the first airplane", func(t *testing.T) {
		known := httptest.NewRecorder()
		api.RiskRows(known, httptest.NewRequest(http.MethodGet, "/api/airplanes/risk?id=a320neo", nil))

		unknown := httptest.NewRecorder()
		api.RiskRows(unknown, httptest.NewRequest(http.MethodGet, "/api/airplanes/risk?id=ghost", nil))

		assert.JSONEq(t, known.Body.String(), unknown.Body.String())
	})
}

func TestSelectAirplaneHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("updates the selection", func(t *testing.T) {
		body := `{"airplaneId": "zeroe"}`
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/select", strings.NewReader(body))
		w := httptest.NewRecorder()

		api.SelectAirplane(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "zeroe", api.fleet.SelectedID())
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/select", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		api.SelectAirplane(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReassignSupplierHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("reassigns and reports ok", func(t *testing.T) {
		body := `{"airplaneId": "737max", "component": "Avionics", "newSupplierId": "alt-av-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/reassign", strings.NewReader(body))
		w := httptest.NewRecorder()

		api.ReassignSupplier(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]bool
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp["ok"])

		for _, airplane := range api.fleet.Airplanes() {
			if airplane.ID == "737max" {
				assert.Equal(t, "alt-av-1", airplane.Suppliers["Avionics"])
			}
		}
	})

	t.Run("unknown airplane reports not ok", func(t *testing.T) {
		body := `{"airplaneId": "ghost", "component": "Avionics", "newSupplierId": "alt-av-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/reassign", strings.NewReader(body))
		w := httptest.NewRecorder()

		api.ReassignSupplier(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]bool
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp["ok"])
	})
}

func TestReplaceComponentHandler(t *testing.T) {
	api := newTestAPI(t)

	t.Run("replaces the component key", func(t *testing.T) {
		body := `{"airplaneId": "a320neo", "oldComponent": "Titanium Forgings", "newComponent": "Composite Panels", "newSupplierId": "s5"}`
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/replace", strings.NewReader(body))
		w := httptest.NewRecorder()

		api.ReplaceComponent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		for _, airplane := range api.fleet.Airplanes() {
			if airplane.ID == "a320neo" {
				assert.NotContains(t, airplane.Suppliers, "Titanium Forgings")
				assert.Equal(t, "s5", airplane.Suppliers["Composite Panels"])
			}
		}
	})
}
