package catalog

import (
	"fmt"
	"time"
)

// MBPerBillionParams is the estimated model memory footprint, in MB, per
// billion parameters at 4-bit quantization. It is a tuned heuristic rather
// than a derived constant.
const MBPerBillionParams = 700.0

// memorySafetyMargin is the fraction of the resolved memory budget that a
// candidate's estimated footprint must stay strictly below.
const memorySafetyMargin = 0.9

// TradeoffMode selects the quality/speed/recency weighting used when ranking
// candidates.
type TradeoffMode string

const (
	// ModeSpeed prefers the smallest viable models.
	ModeSpeed TradeoffMode = "speed"
	// ModeBalanced splits the weighting between recency and size.
	ModeBalanced TradeoffMode = "balanced"
	// ModeQuality prefers the most recent (and typically largest) models.
	ModeQuality TradeoffMode = "quality"
)

// ParseTradeoffMode validates a mode string, treating the empty string as
// ModeBalanced.
func ParseTradeoffMode(s string) (TradeoffMode, error) {
	switch TradeoffMode(s) {
	case ModeSpeed, ModeBalanced, ModeQuality:
		return TradeoffMode(s), nil
	case "":
		return ModeBalanced, nil
	default:
		return "", fmt.Errorf("invalid trade-off mode %q", s)
	}
}

// RecencyWeight returns the weight given to candidate recency (versus
// inverse parameter count) in the ranking score.
func (m TradeoffMode) RecencyWeight() float64 {
	switch m {
	case ModeSpeed:
		return 0
	case ModeQuality:
		return 1
	default:
		return 0.5
	}
}

// Candidate is a downloadable model artifact under consideration for a
// session. Candidates are rebuilt from the remote catalog on every selection
// and are never persisted.
type Candidate struct {
	// ID is the catalog identifier of the artifact.
	ID string `json:"id"`
	// Params is the parameter count in billions, parsed from the identifier.
	Params float64 `json:"params"`
	// EstimatedMemoryMB is the estimated memory footprint of the loaded
	// model, derived from Params.
	EstimatedMemoryMB float64 `json:"estimatedMemoryMB"`
	// LastModified is the catalog's last-modified timestamp for the
	// artifact; the zero value means unknown.
	LastModified time.Time `json:"lastModified,omitzero"`
	// QualityScore is an optional leaderboard quality score. Zero means no
	// leaderboard entry matched.
	QualityScore float64 `json:"qualityScore,omitempty"`
}

// EstimateMemoryMB returns the estimated in-memory footprint for a model
// with the given parameter count in billions.
func EstimateMemoryMB(paramsBillions float64) float64 {
	return paramsBillions * MBPerBillionParams
}

// FitsBudget reports whether the candidate's estimated footprint fits within
// the given memory budget after the safety margin is applied. A footprint
// exactly at the margin boundary does not fit.
func (c Candidate) FitsBudget(budgetMB float64) bool {
	return c.EstimatedMemoryMB < budgetMB*memorySafetyMargin
}
