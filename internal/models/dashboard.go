package models

// ComponentGroup is a cost-share slice for the breakdown chart.
type ComponentGroup struct {
	Name          string  `json:"name"`
	CostPercent   float64 `json:"costPercent"`
	Color         string  `json:"color"`
	SupplierCount int     `json:"supplierCount"`
}

// LeadTime pairs a component's current lead time with its target, in days.
type LeadTime struct {
	Component string `json:"component"`
	Current   int    `json:"current"`
	Target    int    `json:"target"`
}

// RiskEvent is a risk-register entry.
type RiskEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Risk        RiskLevel `json:"risk"`
	Impact      string    `json:"impact"`
	Supplier    string    `json:"supplier"`
	Mitigation  string    `json:"mitigation"`
	Probability int       `json:"probability"`
}

// MonthlySpend is one month of supplier spend by tier, in $M.
type MonthlySpend struct {
	Month string  `json:"month"`
	Tier1 float64 `json:"tier1"`
	Tier2 float64 `json:"tier2"`
	Tier3 float64 `json:"tier3"`
}

// KPIs are the aggregate figures shown on the dashboard header, computed
// once over the primary supplier set.
type KPIs struct {
	TotalSuppliers    int     `json:"totalSuppliers"`
	Countries         int     `json:"countries"`
	AvgLeadTime       int     `json:"avgLeadTime"`
	AvgOnTimeDelivery float64 `json:"avgOnTimeDelivery"`
	AvgQualityScore   float64 `json:"avgQualityScore"`
	CriticalRisks     int     `json:"criticalRisks"`
	HighRisks         int     `json:"highRisks"`
	TotalAnnualSpend  string  `json:"totalAnnualSpend"`
}
