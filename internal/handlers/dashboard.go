package handlers

import (
	"net/http"

	"github.com/aeroscope/core/internal/models"
)

// DashboardResponse bundles every chart-ready projection the overview page
// renders.
type DashboardResponse struct {
	KPIs            models.KPIs             `json:"kpis"`
	ComponentGroups []models.ComponentGroup `json:"componentGroups"`
	LeadTimes       []models.LeadTime       `json:"leadTimes"`
	RiskEvents      []models.RiskEvent      `json:"riskEvents"`
	MonthlySpend    []models.MonthlySpend   `json:"monthlySpend"`
}

// Dashboard returns the aggregate KPIs and chart data in one payload.
func (a *API) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, r, http.StatusOK, DashboardResponse{
		KPIs:            a.catalog.KPIs(),
		ComponentGroups: a.catalog.ComponentGroups(),
		LeadTimes:       a.catalog.LeadTimes(),
		RiskEvents:      a.catalog.RiskEvents(),
		MonthlySpend:    a.catalog.MonthlySpend(),
	})
}
