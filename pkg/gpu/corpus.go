package gpu

import (
	"math"
	"strings"
)

// The reference database is generated offline from a third-party benchmark
// corpus. Each corpus file holds a list of raw entries; mobile corpus files
// carry an "m-" filename prefix which forces mobile classification for their
// entries.

// mobileCorpusPrefix marks corpus files containing mobile GPU benchmarks.
const mobileCorpusPrefix = "m-"

// invalidNameMarker is the placeholder found in corpus entries whose GPU name
// is unknown; such entries are discarded.
const invalidNameMarker = "???"

// BenchmarkSample is a single benchmark measurement for a corpus entry.
type BenchmarkSample struct {
	// Width and Height are the benchmark resolution.
	Width  int `json:"width"`
	Height int `json:"height"`
	// FPS is the measured frame rate.
	FPS float64 `json:"fps"`
	// Device optionally names the device the sample was captured on.
	Device string `json:"device,omitempty"`
}

// CorpusEntry is a raw benchmark-corpus record, prior to any inference.
type CorpusEntry struct {
	Name        string            `json:"name"`
	Model       string            `json:"model"`
	SearchTerms string            `json:"searchTerms"`
	Tier        int               `json:"tier"`
	Benchmarks  []BenchmarkSample `json:"benchmarks"`
}

var corpusSeparatorNormalizer = strings.NewReplacer("-", " ", "/", " ")

// NormalizeCorpusName canonicalizes a corpus GPU name into a database key:
// lowercase, brackets removed, hyphen and slash separators replaced by
// spaces, and whitespace collapsed. Unlike lookup normalization, vendor
// prefixes are retained; the variation generator bridges the difference at
// query time.
func NormalizeCorpusName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = bracketStripper.Replace(s)
	s = corpusSeparatorNormalizer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// averageFPS returns the rounded arithmetic mean of the sample frame rates,
// or the default of 30 when there are no samples.
func averageFPS(samples []BenchmarkSample) int {
	if len(samples) == 0 {
		return defaultFPS
	}
	total := 0.0
	for _, sample := range samples {
		total += sample.FPS
	}
	return int(math.Round(total / float64(len(samples))))
}

// BuildDatabase folds a corpus file's entries into the database. Entries with
// missing or placeholder names are discarded, the first occurrence of a
// normalized name wins, and vendor, platform class, memory, architecture, and
// release year are inferred from the rule tables. A tier outside [1,3] is
// coerced to 1, mirroring the corpus convention for unrated entries.
func BuildDatabase(db *Database, fileName string, entries []CorpusEntry) {
	forceMobile := strings.HasPrefix(fileName, mobileCorpusPrefix)
	for _, entry := range entries {
		if len(entry.Name) < 3 || strings.Contains(entry.Name, invalidNameMarker) {
			continue
		}

		name := NormalizeCorpusName(entry.Name)
		if _, exists := db.Get(name); exists {
			continue
		}

		tier := entry.Tier
		if tier < 1 || tier > 3 {
			tier = 1
		}

		vendor := DetectVendor(name)
		platform := DetectPlatform(name)
		if forceMobile {
			platform = PlatformMobile
		}

		profile := Profile{
			Vendor:   vendor,
			Platform: platform,
			Memory:   EstimateMemory(vendor, platform, tier, name),
			Performance: Performance{
				Tier: tier,
				FPS:  averageFPS(entry.Benchmarks),
			},
			Architecture: DetectArchitecture(vendor, name),
			Year:         DetectYear(vendor, name),
		}
		db.Add(name, profile)
	}
}
