package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRanker(now time.Time) *Ranker {
	r := NewRanker(testLogger(), nil)
	r.now = func() time.Time { return now }
	return r
}

func TestRankCandidatesBudgetFilter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{ID: "big", Params: 8, EstimatedMemoryMB: 5600},
		{ID: "small", Params: 1.5, EstimatedMemoryMB: 1050},
	}

	ranked := testRanker(now).RankCandidates(candidates, 6000, ModeBalanced)
	require.Len(t, ranked, 1)
	assert.Equal(t, "small", ranked[0].ID)

	ranked = testRanker(now).RankCandidates(candidates, 7000, ModeBalanced)
	assert.Len(t, ranked, 2)
}

func TestRankCandidatesBudgetBoundary(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Exactly 90% of the budget does not fit; the comparison is strict.
	candidates := []Candidate{{ID: "edge", Params: 7, EstimatedMemoryMB: 900}}

	ranked := testRanker(now).RankCandidates(candidates, 1000, ModeBalanced)
	assert.Empty(t, ranked)

	candidates[0].EstimatedMemoryMB = 899.9
	ranked = testRanker(now).RankCandidates(candidates, 1000, ModeBalanced)
	assert.Len(t, ranked, 1)
}

func TestRankCandidatesSpeedPrefersSmall(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{ID: "recent-large", Params: 8, EstimatedMemoryMB: 5600, LastModified: now.AddDate(0, 0, -2)},
		{ID: "old-small", Params: 1.5, EstimatedMemoryMB: 1050, LastModified: now.AddDate(-2, 0, 0)},
	}

	ranked := testRanker(now).RankCandidates(candidates, 10000, ModeSpeed)
	require.Len(t, ranked, 2)
	assert.Equal(t, "old-small", ranked[0].ID)
}

func TestRankCandidatesQualityPrefersRecent(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{ID: "old-small", Params: 1.5, EstimatedMemoryMB: 1050, LastModified: now.AddDate(-2, 0, 0)},
		{ID: "recent-large", Params: 8, EstimatedMemoryMB: 5600, LastModified: now.AddDate(0, 0, -2)},
	}

	ranked := testRanker(now).RankCandidates(candidates, 10000, ModeQuality)
	require.Len(t, ranked, 2)
	assert.Equal(t, "recent-large", ranked[0].ID)
}

func TestRankCandidatesMonotonicInBudget(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{ID: "a", Params: 1, EstimatedMemoryMB: 700, LastModified: now.AddDate(0, -1, 0)},
		{ID: "b", Params: 3.8, EstimatedMemoryMB: 2660, LastModified: now.AddDate(0, -6, 0)},
		{ID: "c", Params: 8, EstimatedMemoryMB: 5600, LastModified: now.AddDate(-1, 0, 0)},
	}

	// Growing the budget never shrinks the fitting set.
	for _, mode := range []TradeoffMode{ModeSpeed, ModeBalanced, ModeQuality} {
		previous := 0
		for _, budget := range []float64{500, 1000, 3000, 7000, 20000} {
			ranked := testRanker(now).RankCandidates(candidates, budget, mode)
			assert.GreaterOrEqual(t, len(ranked), previous, "mode %s budget %.0f", mode, budget)
			previous = len(ranked)
		}
	}
}

func TestRankCandidatesZeroLastModified(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{ID: "undated-small", Params: 1.5, EstimatedMemoryMB: 1050},
		{ID: "dated-large", Params: 8, EstimatedMemoryMB: 5600, LastModified: now.AddDate(0, 0, -10)},
	}

	// Without a timestamp the recency term is zero, so under quality mode
	// the dated candidate wins despite its size.
	ranked := testRanker(now).RankCandidates(candidates, 10000, ModeQuality)
	require.Len(t, ranked, 2)
	assert.Equal(t, "dated-large", ranked[0].ID)
}

func TestParseTradeoffMode(t *testing.T) {
	tests := []struct {
		input   string
		mode    TradeoffMode
		wantErr bool
	}{
		{"speed", ModeSpeed, false},
		{"balanced", ModeBalanced, false},
		{"quality", ModeQuality, false},
		{"", ModeBalanced, false},
		{"fastest", ModeBalanced, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := ParseTradeoffMode(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, mode)
		})
	}
}
