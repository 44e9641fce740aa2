package selection

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"modelpickd/pkg/catalog"
	"modelpickd/pkg/gpu"
	"modelpickd/pkg/logging"
)

// Recorder observes selection outcomes. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// RecordSelection records a completed selection attempt and whether it
	// produced a chosen model.
	RecordSelection(succeeded bool)
	// RecordCatalogFailure records a failed remote catalog fetch.
	RecordCatalogFailure()
	// RecordLookupMiss records a device name absent from the reference
	// database, resolved by estimation instead.
	RecordLookupMiss()
}

// nopRecorder discards all observations.
type nopRecorder struct{}

func (nopRecorder) RecordSelection(bool) {}

func (nopRecorder) RecordCatalogFailure() {}

func (nopRecorder) RecordLookupMiss() {}

// Request describes one selection attempt.
type Request struct {
	// GPUName is the free-text graphics device identifier reported by the
	// platform.
	GPUName string `json:"gpuName"`
	// Tier is the performance tier to assume when the device is absent from
	// the reference database (0 through 3).
	Tier int `json:"tier"`
	// Mode is the speed/quality trade-off mode.
	Mode catalog.TradeoffMode `json:"mode"`
}

// Selection is the outcome of a successful selection attempt.
type Selection struct {
	// ModelID is the chosen model identifier.
	ModelID string `json:"modelId"`
	// Profile is the capability profile the budget was derived from.
	Profile *gpu.Profile `json:"profile"`
	// BudgetMB is the memory budget applied to candidates.
	BudgetMB float64 `json:"budgetMB"`
	// Candidates is the ranked candidate list the choice was made from,
	// best first.
	Candidates []catalog.Candidate `json:"candidates"`
}

// Policy selects the best-fitting model for a graphics device. Each Select
// call resolves the device, fetches the remote catalog once, and picks the
// top-ranked candidate that fits, falling back to the built-in list when the
// catalog yields nothing usable.
type Policy struct {
	// log is the associated logger.
	log logging.Logger
	// resolver resolves device names to capability profiles.
	resolver *gpu.Resolver
	// ranker filters and orders catalog candidates.
	ranker *catalog.Ranker
	// leaderboard supplies quality scores for candidate enrichment.
	leaderboard *catalog.Leaderboard
	// recorder observes selection outcomes.
	recorder Recorder
}

// NewPolicy creates a selection policy. A nil recorder disables recording.
func NewPolicy(
	log logging.Logger,
	resolver *gpu.Resolver,
	ranker *catalog.Ranker,
	leaderboard *catalog.Leaderboard,
	recorder Recorder,
) *Policy {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Policy{
		log:         log,
		resolver:    resolver,
		ranker:      ranker,
		leaderboard: leaderboard,
		recorder:    recorder,
	}
}

// Select resolves the device named in the request, ranks the catalog against
// its memory budget, and returns the selection. The catalog and leaderboard
// are fetched concurrently. When the catalog is unreachable or nothing from
// it fits, the built-in fallback list is ranked under the same budget; if
// that too yields nothing, ErrInsufficientCapability is returned.
func (p *Policy) Select(ctx context.Context, request Request) (*Selection, error) {
	if _, err := p.resolver.Resolve(request.GPUName); errors.Is(err, gpu.ErrUnknownGPU) {
		p.recorder.RecordLookupMiss()
	}
	profile, err := p.resolver.ResolveOrEstimate(request.GPUName, request.Tier)
	if err != nil {
		p.recorder.RecordSelection(false)
		return nil, fmt.Errorf("%w: %s", ErrInsufficientCapability, err)
	}
	budget := float64(profile.Memory.BudgetMB())

	var ranked []catalog.Candidate
	var scores map[string]float64
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var rankErr error
		ranked, rankErr = p.ranker.Rank(groupCtx, budget, request.Mode)
		if rankErr != nil {
			p.log.Warnf("Catalog ranking failed, using fallback list: %v", rankErr)
			p.recorder.RecordCatalogFailure()
		}
		return nil
	})
	group.Go(func() error {
		scores = p.leaderboard.Scores(groupCtx)
		return nil
	})
	// Neither goroutine returns an error; failures degrade to fallbacks.
	_ = group.Wait()

	if len(ranked) == 0 {
		ranked = p.ranker.RankCandidates(catalog.FallbackCandidates(), budget, request.Mode)
	}
	if len(ranked) == 0 {
		p.recorder.RecordSelection(false)
		return nil, fmt.Errorf("%w: no candidate fits %.0f MB", ErrInsufficientCapability, budget)
	}

	catalog.Enrich(ranked, scores)
	p.recorder.RecordSelection(true)
	p.log.Infof("Selected %s for %q (budget %.0f MB, mode %s)",
		ranked[0].ID, logging.Sanitize(request.GPUName), budget, request.Mode)
	return &Selection{
		ModelID:    ranked[0].ID,
		Profile:    profile,
		BudgetMB:   budget,
		Candidates: ranked,
	}, nil
}

// IsInsufficientCapability reports whether err represents the condition in
// which no model can be loaded on the device.
func IsInsufficientCapability(err error) bool {
	return errors.Is(err, ErrInsufficientCapability)
}
