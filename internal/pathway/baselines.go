package pathway

import "github.com/aeroscope/core/internal/models"

// baselines is the fixed per-pathway starting point for every screening
// run. Treated as immutable: the engine only ever mutates clones.
var baselines = map[models.Pathway]models.PathwayResult{
	models.PathwaySAF: {
		Pathway: models.PathwaySAF,
		Score: models.PathwayScore{
			Infrastructure: 70,
			Regulatory:     75,
			Economic:       50,
			Scalability:    45,
			Technical:      85,
		},
		Evaluation: "Sustainable aviation fuel is the lowest-friction pathway: drop-in compatible with existing fleets and fueling infrastructure, with feedstock supply as the binding constraint.",
		FailureModes: []models.FailureMode{
			{Mode: "Feedstock supply shortfall", Category: "Supply", Cause: "Collection of waste oils and agricultural residues cannot keep pace with blending mandates", Rank: 2},
			{Mode: "Green premium persists", Category: "Economic", Cause: "Production costs stay well above fossil kerosene without sustained policy support", Rank: 1},
			{Mode: "Sustainability-criteria tightening", Category: "Regulatory", Cause: "Crop-based feedstocks draw indirect land-use scrutiny and shrink the qualifying supply pool", Rank: 3},
		},
		Implications: []models.Implication{
			{Mode: "Feedstock supply shortfall", RootCause: "Fragmented collection logistics", Capability: "Long-term feedstock offtake agreements", Actor: "Fuel producers and airlines", Maturity: "Commercial", Leverage: "Contract structure"},
			{Mode: "Green premium persists", RootCause: "Immature production scale", Capability: "HEFA and power-to-liquid capacity build-out", Actor: "Refiners", Maturity: "Scaling", Leverage: "Capital allocation"},
		},
	},
	models.PathwayLiquidH2: {
		Pathway: models.PathwayLiquidH2,
		Score: models.PathwayScore{
			Infrastructure: 20,
			Regulatory:     45,
			Economic:       35,
			Scalability:    55,
			Technical:      60,
		},
		Evaluation: "Liquid hydrogen offers genuine zero-carbon flight but demands a wholesale rebuild of airport fueling infrastructure and cryogenic airframe integration.",
		FailureModes: []models.FailureMode{
			{Mode: "Airport infrastructure gap", Category: "Infrastructure", Cause: "Cryogenic storage and refueling networks exist at almost no commercial airports", Rank: 1},
			{Mode: "Cryogenic tank certification delay", Category: "Technical", Cause: "No certification precedent for large-scale LH2 containment in commercial airframes", Rank: 2},
			{Mode: "Green hydrogen supply deficit", Category: "Supply", Cause: "Electrolyzer capacity is claimed by ground transport and industry before aviation", Rank: 3},
		},
		Implications: []models.Implication{
			{Mode: "Airport infrastructure gap", RootCause: "No hydrogen logistics chain at airports", Capability: "Cryogenic ground handling systems", Actor: "Airport operators", Maturity: "Pilot", Leverage: "Hub-by-hub rollout"},
			{Mode: "Cryogenic tank certification delay", RootCause: "Novel containment structures", Capability: "Composite cryo-tank manufacturing", Actor: "Tier-1 structure suppliers", Maturity: "Demonstrator", Leverage: "Early certification engagement"},
		},
	},
	models.PathwayElectric: {
		Pathway: models.PathwayElectric,
		Score: models.PathwayScore{
			Infrastructure: 40,
			Regulatory:     65,
			Economic:       45,
			Scalability:    35,
			Technical:      30,
		},
		Evaluation: "Battery-electric propulsion is bounded by energy density: attractive operating economics on short sectors, but the mass penalty grows brutally with range.",
		FailureModes: []models.FailureMode{
			{Mode: "Energy density ceiling", Category: "Technical", Cause: "Cell-level energy density improves too slowly to close the gap to liquid fuels", Rank: 1},
			{Mode: "Battery mineral bottleneck", Category: "Supply", Cause: "Lithium and nickel demand from ground EVs crowds out aviation cell production", Rank: 2},
			{Mode: "Charging peak-load strain", Category: "Infrastructure", Cause: "Turnaround-time charging of large packs exceeds local grid capacity at hubs", Rank: 3},
		},
		Implications: []models.Implication{
			{Mode: "Energy density ceiling", RootCause: "Chemistry limits of lithium-ion", Capability: "Solid-state and lithium-sulfur cell development", Actor: "Cell manufacturers", Maturity: "Research", Leverage: "Technology partnerships"},
			{Mode: "Charging peak-load strain", RootCause: "Grid capacity at airports", Capability: "On-site storage and megawatt charging", Actor: "Airport operators and utilities", Maturity: "Pilot", Leverage: "Grid co-investment"},
		},
	},
}

// Narrative clauses attached by the keyword rules.
const (
	clauseLateCentury = "By the 2045-2050 horizon the regulatory environment is expected to have caught up, easing certification and compliance drag."

	clauseFirstMover = "A 2025-2030 entry carries heavy first-mover penalties: capital and certification costs land before the market matures."

	clausePayloadInversion = "Theoretically impossible at current battery energy density: on a wide-body long-haul mission the battery mass inverts the payload equation."

	clauseDragPenalty = "Cryogenic tank volume imposes a significant drag and storage penalty on long-haul airframes."

	clauseRegionalViability = "Viability improves markedly on regional and short-haul routes, where battery mass stays inside the payload envelope."
)

// Failure-mode overwrites applied by the keyword rules.
const (
	payloadInversionMode  = "Total payload inversion"
	payloadInversionCause = "Battery mass exceeds maximum payload before any passengers or cargo are loaded"

	feedstockCrunchMode = "Extreme feedstock crunch: competing sectors exhaust the available supply"
)
