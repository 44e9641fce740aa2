package selection

import (
	"encoding/json"
	"net/http"
	"strconv"

	"modelpickd/pkg/catalog"
	"modelpickd/pkg/gpu"
	"modelpickd/pkg/logging"
)

// maximumTier is the highest accepted performance tier.
const maximumTier = 3

// Manager exposes GPU resolution, catalog ranking, and model selection over
// HTTP.
type Manager struct {
	// log is the associated logger.
	log logging.Logger
	// resolver resolves device names to capability profiles.
	resolver *gpu.Resolver
	// ranker filters and orders catalog candidates.
	ranker *catalog.Ranker
	// policy performs full selections.
	policy *Policy
	// router is the HTTP request router.
	router *http.ServeMux
}

// NewManager creates a new selection manager.
func NewManager(log logging.Logger, resolver *gpu.Resolver, ranker *catalog.Ranker, policy *Policy) *Manager {
	m := &Manager{
		log:      log,
		resolver: resolver,
		ranker:   ranker,
		policy:   policy,
		router:   http.NewServeMux(),
	}

	// Register routes.
	m.router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	m.router.HandleFunc("GET /picker/v1/gpu", m.handleGetGPU)
	m.router.HandleFunc("GET /picker/v1/models", m.handleGetModels)
	m.router.HandleFunc("GET /picker/v1/selection", m.handleGetSelection)

	return m
}

// GetRoutes returns the routes handled by the manager.
func (m *Manager) GetRoutes() []string {
	return []string{
		"GET /picker/v1/gpu",
		"GET /picker/v1/models",
		"GET /picker/v1/selection",
	}
}

// handleGetGPU handles GET /picker/v1/gpu requests.
func (m *Manager) handleGetGPU(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}
	tier, ok := parseTier(r.URL.Query().Get("tier"))
	if !ok {
		http.Error(w, "invalid tier parameter", http.StatusBadRequest)
		return
	}

	profile, err := m.resolver.ResolveOrEstimate(name, tier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, m.log, profile)
}

// handleGetModels handles GET /picker/v1/models requests.
func (m *Manager) handleGetModels(w http.ResponseWriter, r *http.Request) {
	budget, err := strconv.ParseFloat(r.URL.Query().Get("budget"), 64)
	if err != nil || budget <= 0 {
		http.Error(w, "invalid budget parameter", http.StatusBadRequest)
		return
	}
	mode, err := catalog.ParseTradeoffMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ranked, err := m.ranker.Rank(r.Context(), budget, mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, m.log, ranked)
}

// handleGetSelection handles GET /picker/v1/selection requests.
func (m *Manager) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	tier, ok := parseTier(r.URL.Query().Get("tier"))
	if !ok {
		http.Error(w, "invalid tier parameter", http.StatusBadRequest)
		return
	}
	mode, err := catalog.ParseTradeoffMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := m.policy.Select(r.Context(), Request{
		GPUName: r.URL.Query().Get("gpu"),
		Tier:    tier,
		Mode:    mode,
	})
	if err != nil {
		if IsInsufficientCapability(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, m.log, result)
}

// parseTier parses an optional tier query parameter, defaulting to 1.
func parseTier(value string) (int, bool) {
	if value == "" {
		return 1, true
	}
	tier, err := strconv.Atoi(value)
	if err != nil || tier < 0 || tier > maximumTier {
		return 0, false
	}
	return tier, true
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, log logging.Logger, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Warnln("Error while encoding response:", err)
	}
}

// ServeHTTP implements net/http.Handler.ServeHTTP.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}
