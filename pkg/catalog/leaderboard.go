package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"modelpickd/pkg/logging"
)

// DefaultLeaderboardURL is the public benchmark leaderboard queried to
// enrich candidates with quality scores.
const DefaultLeaderboardURL = "https://open-llm-leaderboard.example.org/api/v1/scores"

// quantizationSuffixPattern matches the packaging suffixes appended to a
// base model name by quantization pipelines.
var quantizationSuffixPattern = regexp.MustCompile(`(?i)(-q\d+f\d+_\d+)?-(MLC|GGUF|AWQ|GPTQ)$`)

// namePunctuation collapses the separators that vary between a catalog
// identifier and its leaderboard listing.
var namePunctuation = regexp.MustCompile(`[-_. ]`)

// curatedScores is the static quality table used when the leaderboard is
// unreachable. Keys are matchable base names, values are aggregate
// benchmark scores on a 0-100 scale.
var curatedScores = map[string]float64{
	"Llama-3.1-8B-Instruct":       71,
	"Llama-3-8B-Instruct":         68,
	"Qwen2.5-7B-Instruct":         74,
	"Qwen2.5-1.5B-Instruct":       60,
	"gemma-2-9b-it":               72,
	"Phi-3-mini-4k-instruct":      66,
	"Phi-3.5-mini-instruct":       67,
	"Mistral-7B-Instruct-v0.3":    65,
	"SmolLM2-1.7B-Instruct":       54,
	"TinyLlama-1.1B-Chat-v1.0":    41,
	"Hermes-3-Llama-3.1-8B":       69,
	"DeepSeek-R1-Distill-Qwen-7B": 73,
}

// MinQualityScore is the lowest quality score a candidate may carry and
// still be preferred under the given mode. Candidates below the threshold
// (or without a score) rank after scored ones.
func MinQualityScore(mode TradeoffMode) float64 {
	switch mode {
	case ModeSpeed:
		return 50
	case ModeQuality:
		return 70
	default:
		return 60
	}
}

// Leaderboard enriches candidates with benchmark quality scores.
type Leaderboard struct {
	// log is the associated logger.
	log logging.Logger
	// httpClient is the HTTP client used for leaderboard requests.
	httpClient *http.Client
	// url is the leaderboard endpoint.
	url string
}

// NewLeaderboard creates a leaderboard client. An empty url selects
// DefaultLeaderboardURL.
func NewLeaderboard(log logging.Logger, httpClient *http.Client, url string) *Leaderboard {
	if url == "" {
		url = DefaultLeaderboardURL
	}
	return &Leaderboard{log: log, httpClient: httpClient, url: url}
}

// leaderboardEntry is the subset of the leaderboard response consumed here.
type leaderboardEntry struct {
	Model string  `json:"model"`
	Score float64 `json:"score"`
}

// Scores fetches the leaderboard and returns base-name keyed quality
// scores. When the fetch fails the curated static table is returned
// instead, so the result is always usable.
func (l *Leaderboard) Scores(ctx context.Context) map[string]float64 {
	scores, err := l.fetch(ctx)
	if err != nil {
		l.log.Warnf("Leaderboard unavailable, using curated scores: %v", err)
		return curatedScores
	}
	return scores
}

func (l *Leaderboard) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating leaderboard request: %w", err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard returned status %d", resp.StatusCode)
	}
	var entries []leaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding leaderboard: %w", err)
	}
	scores := make(map[string]float64, len(entries))
	for _, entry := range entries {
		if entry.Model == "" || entry.Score <= 0 {
			continue
		}
		scores[entry.Model] = entry.Score
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("leaderboard returned no usable entries")
	}
	return scores, nil
}

// BaseName strips the quantization and packaging suffixes from a candidate
// identifier, yielding the name a leaderboard would list.
func BaseName(id string) string {
	return quantizationSuffixPattern.ReplaceAllString(id, "")
}

// matchKey reduces a model name to lowercase alphanumerics so that minor
// punctuation differences between sources do not defeat the match.
func matchKey(name string) string {
	return strings.ToLower(namePunctuation.ReplaceAllString(name, ""))
}

// Enrich annotates each candidate with the quality score of its base name.
// Matching is exact first, then falls back to a punctuation-insensitive
// substring match. Candidates without a match are left unscored.
func Enrich(candidates []Candidate, scores map[string]float64) {
	keyed := make(map[string]float64, len(scores))
	for name, score := range scores {
		keyed[matchKey(name)] = score
	}
	for i := range candidates {
		base := matchKey(BaseName(candidates[i].ID))
		if score, ok := keyed[base]; ok {
			candidates[i].QualityScore = score
			continue
		}
		for key, score := range keyed {
			if strings.Contains(base, key) || strings.Contains(key, base) {
				candidates[i].QualityScore = score
				break
			}
		}
	}
}

// SortByQuality reorders candidates best first by a mode-dependent
// quality-per-cost metric: speed mode discounts quality by model size,
// quality mode uses the raw score, balanced applies a softer size
// discount. Unscored candidates sort last, keeping their prior order.
func SortByQuality(candidates []Candidate, mode TradeoffMode) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return qualityMetric(candidates[i], mode) > qualityMetric(candidates[j], mode)
	})
}

func qualityMetric(c Candidate, mode TradeoffMode) float64 {
	if c.QualityScore <= 0 {
		return 0
	}
	switch mode {
	case ModeSpeed:
		return c.QualityScore / math.Sqrt(c.Params)
	case ModeQuality:
		return c.QualityScore
	default:
		return c.QualityScore / math.Log(c.Params+1)
	}
}
