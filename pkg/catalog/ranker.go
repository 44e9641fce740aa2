package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"modelpickd/pkg/logging"
)

// minAgeDays floors the candidate age used for recency scoring so that
// just-published models do not dominate the ranking.
const minAgeDays = 1.0

// Ranker orders catalog candidates for a given memory budget and trade-off
// mode. Candidates that do not fit the budget are excluded entirely rather
// than ranked low.
type Ranker struct {
	// log is the associated logger.
	log logging.Logger
	// client fetches the remote catalog.
	client *Client
	// now reports the current time. Wall clock by default.
	now func() time.Time
}

// NewRanker creates a ranker backed by the given catalog client.
func NewRanker(log logging.Logger, client *Client) *Ranker {
	return &Ranker{log: log, client: client, now: time.Now}
}

// Rank fetches the catalog and returns the candidates that fit budgetMB,
// best first per mode. A fetch failure is returned to the caller; the
// fallback policy lives above this layer.
func (r *Ranker) Rank(ctx context.Context, budgetMB float64, mode TradeoffMode) ([]Candidate, error) {
	candidates, err := r.client.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("ranking model candidates: %w", err)
	}
	return r.RankCandidates(candidates, budgetMB, mode), nil
}

// RankCandidates filters candidates to those fitting budgetMB and sorts
// them best first. Speed mode favors small models, quality mode favors
// recently published ones, balanced weighs both equally. The input slice
// is not modified.
func (r *Ranker) RankCandidates(candidates []Candidate, budgetMB float64, mode TradeoffMode) []Candidate {
	fitting := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.FitsBudget(budgetMB) {
			fitting = append(fitting, c)
		}
	}
	r.log.Debugf("%d of %d candidates fit within %.0f MB", len(fitting), len(candidates), budgetMB)

	now := r.now()
	weight := mode.RecencyWeight()
	sort.SliceStable(fitting, func(i, j int) bool {
		return r.score(fitting[i], now, weight) > r.score(fitting[j], now, weight)
	})
	return fitting
}

// score combines a recency term and a size term per the trade-off weight.
// Both terms decrease toward zero for old or large models, so higher is
// better.
func (r *Ranker) score(c Candidate, now time.Time, recencyWeight float64) float64 {
	recency := 0.0
	if !c.LastModified.IsZero() {
		ageDays := math.Max(now.Sub(c.LastModified).Hours()/24, minAgeDays)
		recency = 1 / ageDays
	}
	size := 0.0
	if c.Params > 0 {
		size = 1 / c.Params
	}
	return recencyWeight*recency + (1-recencyWeight)*size
}
