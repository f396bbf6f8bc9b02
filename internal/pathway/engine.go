// Package pathway implements the propulsion-pathway screening engine: a
// deterministic transform from a fuel pathway plus free-text scenario and
// constraint input into an adjusted multi-factor score and narrative.
//
// This is intentionally a rule table, not a model. The ordered cascade and
// its mutual-exclusivity groups are the contract: the timeframe branches in
// applyTimeframe are exclusive, and the regional branch only runs when the
// long-haul branch did not match.
package pathway

import (
	"strings"

	"github.com/aeroscope/core/internal/models"
)

// Engine evaluates pathways against scenario text. It holds no mutable
// state; Evaluate is pure and safe for concurrent use.
type Engine struct{}

// NewEngine returns a screening engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate clones the baseline for the pathway (unknown pathways fall back
// to SAF), applies the keyword rules to the lower-cased concatenation of
// scenario and constraints, clamps every axis to [0, 100], and returns the
// adjusted copy. Identical inputs always produce identical output; empty
// text matches no rules and returns the pristine baseline.
func (e *Engine) Evaluate(p models.Pathway, scenario, constraints string) models.PathwayResult {
	baseline, ok := baselines[p]
	if !ok {
		baseline = baselines[models.PathwaySAF]
	}
	result := baseline.Clone()

	text := strings.ToLower(scenario + " " + constraints)

	applyTimeframe(&result, text)
	applyAircraftClass(&result, text)
	applySupport(&result, text)
	applyScarcity(&result, text)

	clampScores(&result.Score)
	return result
}

// applyTimeframe adjusts for the stated entry window. The two branches are
// mutually exclusive; the late-century branch is checked first.
func applyTimeframe(r *models.PathwayResult, text string) {
	switch {
	case containsAny(text, "2045", "2050"):
		r.Score.Regulatory += 15
		r.Score.Technical += 10
		r.Evaluation = r.Evaluation + " " + clauseLateCentury
	case containsAny(text, "2025", "2030"):
		r.Score.Economic -= 20
		r.Score.Technical -= 10
		r.Evaluation = r.Evaluation + " " + clauseFirstMover
	}
}

// applyAircraftClass adjusts for the mission profile. The regional branch
// only runs when the long-haul branch did not match.
func applyAircraftClass(r *models.PathwayResult, text string) {
	if containsAny(text, "wide-body", "long-haul", "trans-atlantic") {
		switch r.Pathway {
		case models.PathwayElectric:
			r.Score.Technical = max(5, r.Score.Technical-30)
			r.Score.Economic -= 20
			r.Evaluation = clausePayloadInversion + " " + r.Evaluation
			if len(r.FailureModes) > 0 {
				r.FailureModes[0].Mode = payloadInversionMode
				r.FailureModes[0].Cause = payloadInversionCause
			}
		case models.PathwayLiquidH2:
			r.Score.Infrastructure = max(5, r.Score.Infrastructure-15)
			r.Evaluation = clauseDragPenalty + " " + r.Evaluation
		}
		return
	}

	if containsAny(text, "regional", "short-haul", "narrow-body") {
		if r.Pathway == models.PathwayElectric {
			r.Score.Technical += 20
			r.Score.Infrastructure += 10
			r.Evaluation = clauseRegionalViability + " " + r.Evaluation
		}
	}
}

// applySupport adjusts for systemic policy support, on any pathway.
func applySupport(r *models.PathwayResult, text string) {
	if containsAny(text, "subsidy", "policy", "mandate") {
		r.Score.Economic += 15
		r.Score.Regulatory += 5
	}
}

// applyScarcity adjusts for resource scarcity. The first failure mode is
// promoted to rank 1; for SAF its label is overwritten as well.
func applyScarcity(r *models.PathwayResult, text string) {
	if !containsAny(text, "scarce", "limited", "competition") {
		return
	}
	r.Score.Scalability = max(10, r.Score.Scalability-25)
	if len(r.FailureModes) > 0 {
		r.FailureModes[0].Rank = 1
		if r.Pathway == models.PathwaySAF {
			r.FailureModes[0].Mode = feedstockCrunchMode
		}
	}
}

func clampScores(s *models.PathwayScore) {
	s.Infrastructure = clamp(s.Infrastructure)
	s.Regulatory = clamp(s.Regulatory)
	s.Economic = clamp(s.Economic)
	s.Scalability = clamp(s.Scalability)
	s.Technical = clamp(s.Technical)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// containsAny is substring containment, not word matching: "2030s" and
// "policy-driven" both count.
func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
