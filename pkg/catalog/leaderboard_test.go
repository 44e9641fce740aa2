package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		id   string
		base string
	}{
		{"Llama-3-8B-Instruct-q4f16_1-MLC", "Llama-3-8B-Instruct"},
		{"gemma-2-9b-it-q4f16_1-MLC", "gemma-2-9b-it"},
		{"Phi-3-mini-4k-instruct-MLC", "Phi-3-mini-4k-instruct"},
		{"Mistral-7B-Instruct-v0.3-GGUF", "Mistral-7B-Instruct-v0.3"},
		{"Qwen2.5-7B-Instruct-AWQ", "Qwen2.5-7B-Instruct"},
		{"Llama-3-8B-Instruct", "Llama-3-8B-Instruct"},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.base, BaseName(tc.id))
		})
	}
}

func TestEnrich(t *testing.T) {
	candidates := []Candidate{
		{ID: "Llama-3-8B-Instruct-q4f16_1-MLC", Params: 8},
		{ID: "gemma-2-9b-it-q4f16_1-MLC", Params: 9},
		{ID: "Unknown-4B-Instruct-q4f16_1-MLC", Params: 4},
	}
	scores := map[string]float64{
		"Llama 3 8B Instruct": 68, // punctuation differs from the catalog ID
		"gemma-2-9b-it":       72,
	}

	Enrich(candidates, scores)

	assert.Equal(t, 68.0, candidates[0].QualityScore)
	assert.Equal(t, 72.0, candidates[1].QualityScore)
	assert.Zero(t, candidates[2].QualityScore)
}

func TestScoresFallsBackToCurated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	lb := NewLeaderboard(testLogger(), server.Client(), server.URL)
	scores := lb.Scores(context.Background())
	require.NotEmpty(t, scores)
	assert.Contains(t, scores, "Llama-3-8B-Instruct")
}

func TestScoresFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[
			{"model": "Llama-3-8B-Instruct", "score": 68.4},
			{"model": "", "score": 50},
			{"model": "Broken", "score": 0}
		]`))
		require.NoError(t, err)
	}))
	defer server.Close()

	lb := NewLeaderboard(testLogger(), server.Client(), server.URL)
	scores := lb.Scores(context.Background())
	require.Len(t, scores, 1)
	assert.Equal(t, 68.4, scores["Llama-3-8B-Instruct"])
}

func TestSortByQuality(t *testing.T) {
	base := []Candidate{
		{ID: "small", Params: 1.5, QualityScore: 54},
		{ID: "large", Params: 9, QualityScore: 72},
		{ID: "unscored", Params: 4},
	}

	speed := append([]Candidate(nil), base...)
	SortByQuality(speed, ModeSpeed)
	// 54/sqrt(1.5) ~ 44 beats 72/sqrt(9) = 24.
	assert.Equal(t, "small", speed[0].ID)
	assert.Equal(t, "unscored", speed[2].ID)

	quality := append([]Candidate(nil), base...)
	SortByQuality(quality, ModeQuality)
	assert.Equal(t, "large", quality[0].ID)
	assert.Equal(t, "unscored", quality[2].ID)
}

func TestMinQualityScore(t *testing.T) {
	assert.Equal(t, 50.0, MinQualityScore(ModeSpeed))
	assert.Equal(t, 60.0, MinQualityScore(ModeBalanced))
	assert.Equal(t, 70.0, MinQualityScore(ModeQuality))
}
