package models

// Pathway is a propulsion/fuel strategy evaluated by the screening engine.
type Pathway string

const (
	PathwaySAF      Pathway = "SAF"
	PathwayLiquidH2 Pathway = "LIQUID_H2"
	PathwayElectric Pathway = "ELECTRIC"
)

// PathwayScore holds the five screening axes, each kept in [0, 100].
type PathwayScore struct {
	Infrastructure int `json:"infrastructure"`
	Regulatory     int `json:"regulatory"`
	Economic       int `json:"economic"`
	Scalability    int `json:"scalability"`
	Technical      int `json:"technical"`
}

// FailureMode is a ranked way the pathway could fail in the given scenario.
type FailureMode struct {
	Mode     string `json:"mode"`
	Category string `json:"category"`
	Cause    string `json:"cause"`
	Rank     int    `json:"rank"`
}

// Implication ties a failure mode back to a supply-chain lever.
type Implication struct {
	Mode       string `json:"mode"`
	RootCause  string `json:"rootCause"`
	Capability string `json:"capability"`
	Actor      string `json:"actor"`
	Maturity   string `json:"maturity"`
	Leverage   string `json:"leverage"`
}

// PathwayResult is the full output of one screening run. Results are built
// fresh from a baseline per request and never persisted or merged.
type PathwayResult struct {
	Pathway      Pathway       `json:"pathway"`
	Score        PathwayScore  `json:"score"`
	Evaluation   string        `json:"evaluation"`
	FailureModes []FailureMode `json:"failureModes"`
	Implications []Implication `json:"implications"`
}

// Clone returns a deep copy. The scoring engine mutates clones only; the
// shared baseline table must never observe a rule adjustment.
func (r PathwayResult) Clone() PathwayResult {
	out := r
	out.FailureModes = make([]FailureMode, len(r.FailureModes))
	copy(out.FailureModes, r.FailureModes)
	out.Implications = make([]Implication, len(r.Implications))
	copy(out.Implications, r.Implications)
	return out
}
