// Package models defines the core data structures of the supply-chain
// domain. It includes the supplier catalog entities, airplane assignments,
// and the derived risk views served to the frontend.
package models

// FuelType is a fuel a supplier's part is compatible with.
type FuelType string

const (
	FuelKerosene FuelType = "KEROSENE"
	FuelSAF      FuelType = "SAF"
	FuelLiquidH2 FuelType = "LIQUID_H2"
	FuelElectric FuelType = "ELECTRIC"
)

// RiskLevel classifies a supplier or risk event.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity maps a risk level to an ordinal for sorting, higher is worse.
// Unknown levels rank below low.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskCritical:
		return 4
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// SupplierTier is the supplier's position in the sourcing hierarchy:
// 1 = system integrators, 2 = subsystem suppliers, 3 = raw materials.
type SupplierTier int

type Supplier struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Tier              SupplierTier `json:"tier"`
	Country           string       `json:"country"`
	Region            string       `json:"region"`
	Component         string       `json:"component"`
	LeadTimeDays      int          `json:"leadTimeDays"`
	CostShare         float64      `json:"costShare"`
	Risk              RiskLevel    `json:"risk"`
	OnTimeDelivery    float64      `json:"onTimeDelivery"`
	QualityScore      float64      `json:"qualityScore"`
	FuelCompatibility []FuelType   `json:"fuelCompatibility"`
}

// KeroseneOnly reports whether the supplier's part works with conventional
// kerosene and nothing else. This is the sustainability-risk condition.
func (s Supplier) KeroseneOnly() bool {
	return len(s.FuelCompatibility) == 1 && s.FuelCompatibility[0] == FuelKerosene
}

// Airplane is an airframe with its current component sourcing. Suppliers
// maps a component name to the id of the supplier assigned to it; it is the
// only mutable structure in the system.
type Airplane struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Model     string            `json:"model"`
	Suppliers map[string]string `json:"suppliers"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the store's internal map.
func (a Airplane) Clone() Airplane {
	out := a
	out.Suppliers = make(map[string]string, len(a.Suppliers))
	for component, supplierID := range a.Suppliers {
		out.Suppliers[component] = supplierID
	}
	return out
}

// ComponentAlternative is a directed substitution edge: the named component
// can structurally replace the one it is keyed under, with fixed deltas.
type ComponentAlternative struct {
	Component           string  `json:"component"`
	Rationale           string  `json:"rationale"`
	Tradeoff            string  `json:"tradeoff"`
	WeightDelta         float64 `json:"weightDelta"`
	CostDelta           float64 `json:"costDelta"`
	SustainabilityScore int     `json:"sustainabilityScore"`
	StructuralScore     int     `json:"structuralScore"`
	DefaultSupplierID   string  `json:"defaultSupplierId"`
}

// SupplierRiskRow is the per-component risk view for a selected airplane.
// RiskLevel is the supplier's own risk promoted to at least medium when the
// part is kerosene-only.
type SupplierRiskRow struct {
	Component          string    `json:"component"`
	Supplier           Supplier  `json:"supplier"`
	SustainabilityRisk bool      `json:"sustainabilityRisk"`
	RiskLevel          RiskLevel `json:"riskLevel"`
}

// RiskCount is the at-a-glance badge data per airplane. High counts
// suppliers at high or critical raw risk; Sustainability counts
// kerosene-only suppliers. Both use raw levels, not the promoted one.
type RiskCount struct {
	High           int `json:"high"`
	Sustainability int `json:"sustainability"`
}
