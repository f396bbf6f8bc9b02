// Package catalog holds the immutable supply-chain reference data and the
// pure derivations over it. The catalog is built once at process start and
// injected into the fleet store and handlers; nothing mutates it afterwards.
package catalog

import (
	"math"
	"strings"

	"github.com/aeroscope/core/internal/models"
)

// Catalog is the process-wide reference-data set.
type Catalog struct {
	suppliers    []models.Supplier
	byID         map[string]models.Supplier
	components   []string
	alternatives map[string][]models.ComponentAlternative
	kpis         models.KPIs
}

// New builds the catalog from the embedded reference tables, indexes
// suppliers by id, and precomputes the dashboard KPIs.
func New() *Catalog {
	c := &Catalog{
		suppliers:    allSuppliers,
		byID:         make(map[string]models.Supplier, len(allSuppliers)),
		alternatives: compatibleComponents,
	}

	seen := make(map[string]bool)
	for _, s := range allSuppliers {
		c.byID[s.ID] = s
		if !seen[s.Component] {
			seen[s.Component] = true
			c.components = append(c.components, s.Component)
		}
	}

	c.kpis = computeKPIs(c.primarySuppliers(), riskEvents)
	return c
}

// primarySuppliers is the default sourcing set (ids "s1".."s12"); alternates
// carry an "alt-" prefix and are excluded from aggregate KPIs.
func (c *Catalog) primarySuppliers() []models.Supplier {
	var primary []models.Supplier
	for _, s := range c.suppliers {
		if strings.HasPrefix(s.ID, "s") {
			primary = append(primary, s)
		}
	}
	return primary
}

func computeKPIs(suppliers []models.Supplier, events []models.RiskEvent) models.KPIs {
	kpis := models.KPIs{
		TotalSuppliers:   len(suppliers),
		TotalAnnualSpend: "$1.04B",
	}

	countries := make(map[string]bool)
	var leadTime int
	var onTime, quality float64
	for _, s := range suppliers {
		countries[s.Country] = true
		leadTime += s.LeadTimeDays
		onTime += s.OnTimeDelivery
		quality += s.QualityScore
	}
	if n := len(suppliers); n > 0 {
		kpis.Countries = len(countries)
		kpis.AvgLeadTime = int(math.Round(float64(leadTime) / float64(n)))
		kpis.AvgOnTimeDelivery = math.Round(onTime/float64(n)*10) / 10
		kpis.AvgQualityScore = math.Round(quality/float64(n)*10) / 10
	}

	for _, e := range events {
		switch e.Risk {
		case models.RiskCritical:
			kpis.CriticalRisks++
		case models.RiskHigh:
			kpis.HighRisks++
		}
	}
	return kpis
}

// Suppliers returns every known supplier, assigned and alternative.
func (c *Catalog) Suppliers() []models.Supplier {
	return c.suppliers
}

// SupplierByID resolves a supplier id. A miss is an absence, not an error.
func (c *Catalog) SupplierByID(id string) (models.Supplier, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Alternatives lists suppliers for the component, excluding the one with
// the given id.
func (c *Catalog) Alternatives(component, excludeID string) []models.Supplier {
	var out []models.Supplier
	for _, s := range c.suppliers {
		if s.Component == component && s.ID != excludeID {
			out = append(out, s)
		}
	}
	return out
}

// Components lists the unique component names in catalog order.
func (c *Catalog) Components() []string {
	return c.components
}

// CompatibleComponents lists documented substitutes for the component.
// Unknown components have none.
func (c *Catalog) CompatibleComponents(component string) []models.ComponentAlternative {
	return c.alternatives[component]
}

// HasCompatibleComponents reports whether any substitute exists.
func (c *Catalog) HasCompatibleComponents(component string) bool {
	return len(c.alternatives[component]) > 0
}

// InitialAirplanes returns deep copies of the airplane seed roster, so the
// fleet store can mutate assignments without touching catalog data.
func (c *Catalog) InitialAirplanes() []models.Airplane {
	out := make([]models.Airplane, len(initialAirplanes))
	for i, a := range initialAirplanes {
		out[i] = a.Clone()
	}
	return out
}

// KPIs returns the precomputed dashboard aggregates.
func (c *Catalog) KPIs() models.KPIs {
	return c.kpis
}

// ComponentGroups returns the cost-breakdown chart data.
func (c *Catalog) ComponentGroups() []models.ComponentGroup {
	return componentGroups
}

// LeadTimes returns current-vs-target lead times per component.
func (c *Catalog) LeadTimes() []models.LeadTime {
	return leadTimes
}

// RiskEvents returns the risk register.
func (c *Catalog) RiskEvents() []models.RiskEvent {
	return riskEvents
}

// MonthlySpend returns twelve months of tiered spend history.
func (c *Catalog) MonthlySpend() []models.MonthlySpend {
	return monthlySpend
}
