package catalog

import "github.com/aeroscope/core/internal/models"

var (
	allFuels     = []models.FuelType{models.FuelKerosene, models.FuelSAF, models.FuelLiquidH2, models.FuelElectric}
	conventional = []models.FuelType{models.FuelKerosene}
	keroseneSAF  = []models.FuelType{models.FuelKerosene, models.FuelSAF}
)

// allSuppliers is every known supplier, assigned and alternative.
var allSuppliers = []models.Supplier{
	// Engines
	{ID: "s1", Name: "Rolls-Royce", Tier: 1, Country: "UK", Region: "Europe", Component: "Engines", LeadTimeDays: 180, CostShare: 22, Risk: models.RiskLow, OnTimeDelivery: 96, QualityScore: 98, FuelCompatibility: keroseneSAF},
	{ID: "alt-eng-1", Name: "CFM International", Tier: 1, Country: "France", Region: "Europe", Component: "Engines", LeadTimeDays: 170, CostShare: 24, Risk: models.RiskLow, OnTimeDelivery: 95, QualityScore: 97, FuelCompatibility: allFuels},
	{ID: "alt-eng-2", Name: "Pratt & Whitney", Tier: 1, Country: "USA", Region: "North America", Component: "Engines", LeadTimeDays: 190, CostShare: 21, Risk: models.RiskMedium, OnTimeDelivery: 89, QualityScore: 94, FuelCompatibility: keroseneSAF},
	{ID: "alt-eng-3", Name: "GE Aerospace", Tier: 1, Country: "USA", Region: "North America", Component: "Engines", LeadTimeDays: 175, CostShare: 23, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 96, FuelCompatibility: allFuels},

	// Landing Gear
	{ID: "s2", Name: "Safran", Tier: 1, Country: "France", Region: "Europe", Component: "Landing Gear", LeadTimeDays: 150, CostShare: 14, Risk: models.RiskLow, OnTimeDelivery: 94, QualityScore: 97, FuelCompatibility: allFuels},
	{ID: "alt-lg-1", Name: "Héroux-Devtek", Tier: 1, Country: "Canada", Region: "North America", Component: "Landing Gear", LeadTimeDays: 140, CostShare: 13, Risk: models.RiskLow, OnTimeDelivery: 92, QualityScore: 95, FuelCompatibility: allFuels},
	{ID: "alt-lg-2", Name: "Liebherr Aerospace", Tier: 1, Country: "Germany", Region: "Europe", Component: "Landing Gear", LeadTimeDays: 155, CostShare: 15, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 96, FuelCompatibility: allFuels},

	// Avionics
	{ID: "s3", Name: "Collins Aerospace", Tier: 1, Country: "USA", Region: "North America", Component: "Avionics", LeadTimeDays: 120, CostShare: 12, Risk: models.RiskMedium, OnTimeDelivery: 91, QualityScore: 95, FuelCompatibility: conventional},
	{ID: "alt-av-1", Name: "Thales Avionics", Tier: 1, Country: "France", Region: "Europe", Component: "Avionics", LeadTimeDays: 110, CostShare: 13, Risk: models.RiskLow, OnTimeDelivery: 94, QualityScore: 97, FuelCompatibility: allFuels},
	{ID: "alt-av-2", Name: "Honeywell Aerospace", Tier: 1, Country: "USA", Region: "North America", Component: "Avionics", LeadTimeDays: 115, CostShare: 14, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 96, FuelCompatibility: keroseneSAF},

	// Fuselage
	{ID: "s4", Name: "Spirit AeroSystems", Tier: 1, Country: "USA", Region: "North America", Component: "Fuselage", LeadTimeDays: 200, CostShare: 18, Risk: models.RiskMedium, OnTimeDelivery: 88, QualityScore: 93, FuelCompatibility: conventional},
	{ID: "alt-fus-1", Name: "Aernnova", Tier: 1, Country: "Spain", Region: "Europe", Component: "Fuselage", LeadTimeDays: 185, CostShare: 17, Risk: models.RiskLow, OnTimeDelivery: 92, QualityScore: 95, FuelCompatibility: allFuels},
	{ID: "alt-fus-2", Name: "FACC AG", Tier: 1, Country: "Austria", Region: "Europe", Component: "Fuselage", LeadTimeDays: 195, CostShare: 16, Risk: models.RiskLow, OnTimeDelivery: 91, QualityScore: 96, FuelCompatibility: keroseneSAF},

	// Composite Panels
	{ID: "s5", Name: "Hexcel", Tier: 2, Country: "USA", Region: "North America", Component: "Composite Panels", LeadTimeDays: 90, CostShare: 8, Risk: models.RiskLow, OnTimeDelivery: 95, QualityScore: 96, FuelCompatibility: allFuels},
	{ID: "alt-cp-1", Name: "Solvay Composites", Tier: 2, Country: "Belgium", Region: "Europe", Component: "Composite Panels", LeadTimeDays: 85, CostShare: 9, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 95, FuelCompatibility: allFuels},

	// Flight Control Systems
	{ID: "s6", Name: "Moog Inc.", Tier: 2, Country: "USA", Region: "North America", Component: "Flight Control Systems", LeadTimeDays: 110, CostShare: 6, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 95, FuelCompatibility: keroseneSAF},
	{ID: "alt-fcs-1", Name: "Parker Hannifin", Tier: 2, Country: "USA", Region: "North America", Component: "Flight Control Systems", LeadTimeDays: 100, CostShare: 7, Risk: models.RiskLow, OnTimeDelivery: 91, QualityScore: 94, FuelCompatibility: allFuels},

	// Actuation Systems
	{ID: "s7", Name: "Curtiss-Wright", Tier: 2, Country: "USA", Region: "North America", Component: "Actuation Systems", LeadTimeDays: 85, CostShare: 4, Risk: models.RiskMedium, OnTimeDelivery: 90, QualityScore: 94, FuelCompatibility: conventional},
	{ID: "alt-act-1", Name: "Eaton Aerospace", Tier: 2, Country: "Ireland", Region: "Europe", Component: "Actuation Systems", LeadTimeDays: 80, CostShare: 5, Risk: models.RiskLow, OnTimeDelivery: 94, QualityScore: 96, FuelCompatibility: allFuels},

	// Thermal Systems
	{ID: "s8", Name: "Meggitt", Tier: 2, Country: "UK", Region: "Europe", Component: "Thermal Systems", LeadTimeDays: 75, CostShare: 3, Risk: models.RiskLow, OnTimeDelivery: 92, QualityScore: 96, FuelCompatibility: keroseneSAF},

	// Aluminum Alloys
	{ID: "s9", Name: "Alcoa", Tier: 3, Country: "USA", Region: "North America", Component: "Aluminum Alloys", LeadTimeDays: 45, CostShare: 4, Risk: models.RiskMedium, OnTimeDelivery: 89, QualityScore: 92, FuelCompatibility: allFuels},
	{ID: "alt-al-1", Name: "Constellium", Tier: 3, Country: "France", Region: "Europe", Component: "Aluminum Alloys", LeadTimeDays: 40, CostShare: 4, Risk: models.RiskLow, OnTimeDelivery: 93, QualityScore: 95, FuelCompatibility: allFuels},

	// Carbon Fiber
	{ID: "s10", Name: "Toray Industries", Tier: 3, Country: "Japan", Region: "Asia Pacific", Component: "Carbon Fiber", LeadTimeDays: 60, CostShare: 5, Risk: models.RiskHigh, OnTimeDelivery: 85, QualityScore: 97, FuelCompatibility: allFuels},
	{ID: "alt-cf-1", Name: "Teijin Carbon", Tier: 3, Country: "Japan", Region: "Asia Pacific", Component: "Carbon Fiber", LeadTimeDays: 55, CostShare: 6, Risk: models.RiskMedium, OnTimeDelivery: 88, QualityScore: 95, FuelCompatibility: allFuels},

	// Titanium Forgings
	{ID: "s11", Name: "Titanium Metals Corp", Tier: 3, Country: "USA", Region: "North America", Component: "Titanium Forgings", LeadTimeDays: 70, CostShare: 3, Risk: models.RiskCritical, OnTimeDelivery: 82, QualityScore: 91, FuelCompatibility: conventional},
	{ID: "alt-ti-1", Name: "VSMPO-AVISMA", Tier: 3, Country: "Russia", Region: "Europe", Component: "Titanium Forgings", LeadTimeDays: 80, CostShare: 3, Risk: models.RiskHigh, OnTimeDelivery: 78, QualityScore: 90, FuelCompatibility: allFuels},
	{ID: "alt-ti-2", Name: "ATI Inc.", Tier: 3, Country: "USA", Region: "North America", Component: "Titanium Forgings", LeadTimeDays: 65, CostShare: 4, Risk: models.RiskLow, OnTimeDelivery: 91, QualityScore: 94, FuelCompatibility: allFuels},

	// Adhesives & Sealants
	{ID: "s12", Name: "Solvay", Tier: 3, Country: "Belgium", Region: "Europe", Component: "Adhesives & Sealants", LeadTimeDays: 30, CostShare: 1, Risk: models.RiskLow, OnTimeDelivery: 97, QualityScore: 98, FuelCompatibility: allFuels},
}

// compatibleComponents maps a component to the components that can
// structurally replace it, with fixed trade-off deltas.
var compatibleComponents = map[string][]models.ComponentAlternative{
	"Titanium Forgings": {
		{Component: "Aluminum Alloys", Rationale: "Lower-density alloy for non-critical structural joins", Tradeoff: "Lighter & cheaper but lower fatigue resistance", WeightDelta: -120, CostDelta: -35, SustainabilityScore: 72, StructuralScore: 68, DefaultSupplierID: "s9"},
		{Component: "Composite Panels", Rationale: "Carbon-fiber-reinforced polymer as structural replacement", Tradeoff: "Excellent weight savings; longer lead time for certification", WeightDelta: -200, CostDelta: 15, SustainabilityScore: 85, StructuralScore: 78, DefaultSupplierID: "s5"},
	},
	"Aluminum Alloys": {
		{Component: "Composite Panels", Rationale: "Advanced composites as full structural replacement", Tradeoff: "Lighter but more expensive; superior corrosion resistance", WeightDelta: -90, CostDelta: 25, SustainabilityScore: 88, StructuralScore: 82, DefaultSupplierID: "s5"},
		{Component: "Titanium Forgings", Rationale: "High-strength titanium for critical load paths", Tradeoff: "Heavier & more expensive; far superior fatigue life", WeightDelta: 120, CostDelta: 40, SustainabilityScore: 55, StructuralScore: 96, DefaultSupplierID: "alt-ti-2"},
	},
	"Carbon Fiber": {
		{Component: "Composite Panels", Rationale: "Pre-impregnated composite panels with embedded fiber", Tradeoff: "Easier manufacturing; slightly lower tensile strength", WeightDelta: 15, CostDelta: -10, SustainabilityScore: 80, StructuralScore: 85, DefaultSupplierID: "s5"},
	},
	"Composite Panels": {
		{Component: "Aluminum Alloys", Rationale: "Traditional alloy panels for cost-sensitive areas", Tradeoff: "Cheaper but heavier; well-understood maintenance", WeightDelta: 90, CostDelta: -30, SustainabilityScore: 60, StructuralScore: 75, DefaultSupplierID: "alt-al-1"},
		{Component: "Carbon Fiber", Rationale: "Raw carbon fiber layup for maximum strength-to-weight", Tradeoff: "Best strength-to-weight but expensive and slow to produce", WeightDelta: -15, CostDelta: 20, SustainabilityScore: 82, StructuralScore: 95, DefaultSupplierID: "s10"},
	},
	"Engines": {
		{Component: "Engines", Rationale: "Hydrogen fuel-cell powertrain (experimental)", Tradeoff: "Zero emissions; limited range; requires new infrastructure", WeightDelta: 300, CostDelta: 80, SustainabilityScore: 98, StructuralScore: 70, DefaultSupplierID: "alt-eng-1"},
	},
	"Actuation Systems": {
		{Component: "Flight Control Systems", Rationale: "Integrated fly-by-wire with built-in actuation", Tradeoff: "Consolidated system reduces part count; higher upfront cost", WeightDelta: -25, CostDelta: 30, SustainabilityScore: 78, StructuralScore: 88, DefaultSupplierID: "alt-fcs-1"},
	},
	"Flight Control Systems": {
		{Component: "Actuation Systems", Rationale: "Discrete actuators with separate FCS controller", Tradeoff: "More modular; easier to service individual units", WeightDelta: 25, CostDelta: -20, SustainabilityScore: 70, StructuralScore: 80, DefaultSupplierID: "alt-act-1"},
	},
}

// initialAirplanes seeds the fleet store. The 737 MAX carries the most
// kerosene-locked suppliers and is the default selection.
var initialAirplanes = []models.Airplane{
	{
		ID:    "a320neo",
		Name:  "A320neo",
		Model: "Airbus A320neo",
		Suppliers: map[string]string{
			"Engines":                "alt-eng-1",
			"Landing Gear":           "s2",
			"Avionics":               "alt-av-1",
			"Fuselage":               "alt-fus-1",
			"Composite Panels":       "s5",
			"Flight Control Systems": "alt-fcs-1",
			"Actuation Systems":      "alt-act-1",
			"Thermal Systems":        "s8",
			"Aluminum Alloys":        "alt-al-1",
			"Carbon Fiber":           "s10",
			"Titanium Forgings":      "alt-ti-2",
			"Adhesives & Sealants":   "s12",
		},
	},
	{
		ID:    "737max",
		Name:  "737 MAX",
		Model: "Boeing 737 MAX",
		Suppliers: map[string]string{
			"Engines":                "s1",
			"Landing Gear":           "s2",
			"Avionics":               "s3",
			"Fuselage":               "s4",
			"Composite Panels":       "s5",
			"Flight Control Systems": "s6",
			"Actuation Systems":      "s7",
			"Thermal Systems":        "s8",
			"Aluminum Alloys":        "s9",
			"Carbon Fiber":           "s10",
			"Titanium Forgings":      "s11",
			"Adhesives & Sealants":   "s12",
		},
	},
	{
		ID:    "zeroe",
		Name:  "ZEROe H2",
		Model: "Airbus ZEROe Concept",
		Suppliers: map[string]string{
			"Engines":                "alt-eng-1",
			"Landing Gear":           "alt-lg-1",
			"Avionics":               "alt-av-1",
			"Fuselage":               "alt-fus-1",
			"Composite Panels":       "s5",
			"Flight Control Systems": "alt-fcs-1",
			"Actuation Systems":      "alt-act-1",
			"Thermal Systems":        "s8",
			"Aluminum Alloys":        "alt-al-1",
			"Carbon Fiber":           "alt-cf-1",
			"Titanium Forgings":      "alt-ti-2",
			"Adhesives & Sealants":   "s12",
		},
	},
}

var componentGroups = []models.ComponentGroup{
	{Name: "Engines & Nacelles", CostPercent: 28, Color: "#22d3ee", SupplierCount: 4},
	{Name: "Fuselage & Structure", CostPercent: 22, Color: "#a78bfa", SupplierCount: 3},
	{Name: "Avionics & Electronics", CostPercent: 15, Color: "#4ade80", SupplierCount: 2},
	{Name: "Landing Gear", CostPercent: 12, Color: "#fbbf24", SupplierCount: 2},
	{Name: "Flight Controls", CostPercent: 10, Color: "#f472b6", SupplierCount: 2},
	{Name: "Interior & Cabin", CostPercent: 8, Color: "#fb923c", SupplierCount: 3},
	{Name: "Raw Materials", CostPercent: 5, Color: "#94a3b8", SupplierCount: 4},
}

var leadTimes = []models.LeadTime{
	{Component: "Engines", Current: 180, Target: 150},
	{Component: "Fuselage", Current: 200, Target: 160},
	{Component: "Landing Gear", Current: 150, Target: 120},
	{Component: "Avionics", Current: 120, Target: 90},
	{Component: "Composites", Current: 90, Target: 70},
	{Component: "Flight Controls", Current: 110, Target: 85},
	{Component: "Titanium Forgings", Current: 70, Target: 50},
	{Component: "Carbon Fiber", Current: 60, Target: 40},
}

var riskEvents = []models.RiskEvent{
	{ID: "r1", Title: "Titanium supply disruption", Risk: models.RiskCritical, Impact: "Production halt — 3-week delay per aircraft", Supplier: "Titanium Metals Corp", Mitigation: "Dual-source from VSMPO-AVISMA; 6-month strategic buffer stock", Probability: 35},
	{ID: "r2", Title: "Carbon fiber shortage", Risk: models.RiskHigh, Impact: "Wing panel production delayed 2 weeks", Supplier: "Toray Industries", Mitigation: "Qualify Hexcel as alternate supplier; increase safety stock to 90 days", Probability: 25},
	{ID: "r3", Title: "Avionics chip lead-time increase", Risk: models.RiskMedium, Impact: "Cockpit integration pushed back 10 days", Supplier: "Collins Aerospace", Mitigation: "Long-term purchase agreements; pre-order 12-month chip inventory", Probability: 40},
	{ID: "r4", Title: "Fuselage quality non-conformance", Risk: models.RiskMedium, Impact: "Rework adds 5 days per unit", Supplier: "Spirit AeroSystems", Mitigation: "Embedded quality engineers; real-time defect monitoring system", Probability: 20},
	{ID: "r5", Title: "Geopolitical trade restriction", Risk: models.RiskHigh, Impact: "Loss of rare-earth magnets for actuators", Supplier: "Moog Inc.", Mitigation: "Diversify sourcing to non-restricted regions; redesign with alternative materials", Probability: 15},
}

var monthlySpend = []models.MonthlySpend{
	{Month: "Jul", Tier1: 42, Tier2: 18, Tier3: 8},
	{Month: "Aug", Tier1: 45, Tier2: 19, Tier3: 9},
	{Month: "Sep", Tier1: 48, Tier2: 20, Tier3: 9},
	{Month: "Oct", Tier1: 44, Tier2: 21, Tier3: 10},
	{Month: "Nov", Tier1: 50, Tier2: 22, Tier3: 11},
	{Month: "Dec", Tier1: 52, Tier2: 23, Tier3: 10},
	{Month: "Jan", Tier1: 47, Tier2: 21, Tier3: 12},
	{Month: "Feb", Tier1: 51, Tier2: 24, Tier3: 11},
	{Month: "Mar", Tier1: 55, Tier2: 25, Tier3: 13},
	{Month: "Apr", Tier1: 53, Tier2: 23, Tier3: 12},
	{Month: "May", Tier1: 58, Tier2: 26, Tier3: 14},
	{Month: "Jun", Tier1: 60, Tier2: 28, Tier3: 13},
}
