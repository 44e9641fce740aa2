package gpu

import (
	"errors"
	"strings"

	"modelpickd/pkg/logging"
)

// ErrUnknownGPU is a sentinel error returned by Resolver.Resolve when the
// reference database has no exact or partial match for the supplied name. The
// condition is recoverable: ResolveOrEstimate degrades to a heuristic
// estimate instead of surfacing it.
var ErrUnknownGPU = errors.New("gpu not found in reference database")

// ErrEmptyGPUName indicates that no GPU identifier was supplied, leaving
// nothing to resolve or estimate against.
var ErrEmptyGPUName = errors.New("empty gpu name")

// defaultFPS is assumed for profiles synthesized by the estimation fallback,
// matching the database builder's default for entries without benchmark
// samples.
const defaultFPS = 30

// Resolver answers capability queries for free-text GPU identifiers against a
// read-only reference database. All methods are synchronous, in-memory
// computation; Resolver is safe for concurrent use.
type Resolver struct {
	// log is the associated logger.
	log logging.Logger
	// db is the reference database.
	db *Database
}

// NewResolver creates a resolver over the given database.
func NewResolver(log logging.Logger, db *Database) *Resolver {
	return &Resolver{log: log, db: db}
}

// Resolve looks up a raw GPU identifier in the reference database. It probes
// every generated name variation for an exact key match first, then falls
// back to a partial (substring-relation) scan over all keys. It returns
// ErrUnknownGPU when neither pass produces a hit and ErrEmptyGPUName when the
// identifier is empty.
func (r *Resolver) Resolve(rawName string) (*Profile, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, ErrEmptyGPUName
	}

	variations := Variations(rawName)

	// Exact-match pass. Variations are probed in generation order, with the
	// normalized form first, so an exact hit always takes precedence over any
	// partial match.
	for _, variation := range variations {
		if profile, ok := r.db.Get(variation); ok {
			return &profile, nil
		}
	}

	// Partial-match pass: accept any key that contains a variation or is
	// contained by one, preferring the longest such overlap. Ties fall back
	// to variation order, then database insertion order.
	var best *Profile
	bestOverlap := 0
	for _, variation := range variations {
		for _, key := range r.db.Keys() {
			overlap := 0
			if strings.Contains(key, variation) {
				overlap = len(variation)
			} else if strings.Contains(variation, key) {
				overlap = len(key)
			}
			if overlap > bestOverlap {
				profile, _ := r.db.Get(key)
				best = &profile
				bestOverlap = overlap
			}
		}
	}
	if best != nil {
		return best, nil
	}

	r.log.Debugf("No reference entry for GPU %q", logging.Sanitize(rawName))
	return nil, ErrUnknownGPU
}

// ResolveOrEstimate resolves a raw GPU identifier, synthesizing a heuristic
// capability profile when the database has no match. The synthesized profile
// infers vendor and platform class from substring cues in the normalized
// name, estimates memory from the platform class and the externally probed
// performance tier, and leaves architecture and release year unset. It fails
// only for an empty identifier.
func (r *Resolver) ResolveOrEstimate(rawName string, tier int) (*Profile, error) {
	profile, err := r.Resolve(rawName)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, ErrEmptyGPUName) {
		return nil, err
	}

	normalized := Normalize(rawName)
	vendor := DetectVendor(normalized)
	platform := DetectPlatform(normalized)
	estimateMB := EstimateBudgetMB(platform, tier)

	memory := Memory{}
	if platform == PlatformDesktop {
		memory.VRAMMB = estimateMB
	} else {
		memory.UnifiedMB = estimateMB
	}

	r.log.Infof("Estimated %d MB (%s/%s, tier %d) for unrecognized GPU %q",
		estimateMB, vendor, platform, tier, logging.Sanitize(rawName))

	return &Profile{
		Vendor:      vendor,
		Platform:    platform,
		Memory:      memory,
		Performance: Performance{Tier: tier, FPS: defaultFPS},
	}, nil
}
