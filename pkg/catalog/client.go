package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"modelpickd/pkg/logging"
)

// DefaultCatalogURL is the model-hosting search API queried for candidate
// artifacts compatible with the in-browser runtime.
const DefaultCatalogURL = "https://huggingface.co/api/models?author=mlc-ai&sort=downloads&direction=-1&limit=50"

const (
	// runtimeTag is the artifact naming suffix identifying models packaged
	// for the target runtime.
	runtimeTag = "-MLC"
	// instructTag restricts candidates to instruction-tuned chat models.
	instructTag = "Instruct"
)

// paramCountPattern extracts the parameter count, in billions, from a
// candidate identifier (a decimal number immediately followed by "B").
var paramCountPattern = regexp.MustCompile(`([\d.]+)B`)

// Client fetches the remote model catalog. It performs a single request per
// call with no internal retries; transient failures surface as errors for
// the caller's fallback policy to absorb.
type Client struct {
	// log is the associated logger.
	log logging.Logger
	// httpClient is the HTTP client used for catalog requests. Any timeout
	// is owned by this client; Client itself imposes none.
	httpClient *http.Client
	// url is the catalog search endpoint.
	url string
}

// NewClient creates a catalog client. An empty url selects
// DefaultCatalogURL.
func NewClient(log logging.Logger, httpClient *http.Client, url string) *Client {
	if url == "" {
		url = DefaultCatalogURL
	}
	return &Client{log: log, httpClient: httpClient, url: url}
}

// catalogModel is the subset of the search API response consumed here.
type catalogModel struct {
	ID           string `json:"id"`
	LastModified string `json:"lastModified"`
}

// ListCandidates fetches the catalog snapshot and converts it into
// candidates: entries are filtered to the runtime's naming convention, the
// parameter count is parsed from each identifier, and entries without a
// parseable non-zero parameter count are dropped.
func (c *Client) ListCandidates(ctx context.Context) ([]Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating catalog request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching model catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model catalog returned status %d", resp.StatusCode)
	}

	var models []catalogModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("decoding model catalog: %w", err)
	}

	candidates := make([]Candidate, 0, len(models))
	for _, model := range models {
		if !strings.HasSuffix(model.ID, runtimeTag) || !strings.Contains(model.ID, instructTag) {
			continue
		}
		params := parseParamCount(model.ID)
		if params <= 0 {
			c.log.Debugf("Discarding candidate with unparseable parameter count: %s", logging.Sanitize(model.ID))
			continue
		}
		candidates = append(candidates, Candidate{
			ID:                shortID(model.ID),
			Params:            params,
			EstimatedMemoryMB: EstimateMemoryMB(params),
			LastModified:      parseLastModified(model.LastModified),
		})
	}
	c.log.Infof("Model catalog returned %d candidates", len(candidates))
	return candidates, nil
}

// parseParamCount extracts the parameter count in billions from a candidate
// identifier, returning 0 when no parseable count is present.
func parseParamCount(id string) float64 {
	match := paramCountPattern.FindStringSubmatch(id)
	if match == nil {
		return 0
	}
	params, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return params
}

// shortID strips the catalog namespace from an identifier, e.g.
// "mlc-ai/Llama-3-8B-Instruct-q4f16_1-MLC" becomes
// "Llama-3-8B-Instruct-q4f16_1-MLC".
func shortID(id string) string {
	if _, name, found := strings.Cut(id, "/"); found {
		return name
	}
	return id
}

func parseLastModified(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
