package gpu

import "strings"

// vendorPrefixes are the vendor tokens stripped from the front of a GPU name
// during normalization.
var vendorPrefixes = []string{"nvidia", "amd", "intel", "apple", "qualcomm", "arm"}

// genericSuffixes are the generic trailing tokens stripped during
// normalization.
var genericSuffixes = []string{"graphics", "gpu", "processor"}

// variationVendors is the fixed vendor list used to generate re-prefixed name
// variations for database probing.
var variationVendors = []string{"nvidia", "amd", "intel", "apple"}

var bracketStripper = strings.NewReplacer("(", "", ")", "", "[", "", "]", "")

// Normalize canonicalizes a raw GPU identifier for database lookup:
// lowercase, trimmed, bracket characters removed, internal whitespace
// collapsed, a single leading vendor token stripped, and a single trailing
// generic suffix ("graphics", "gpu", "processor") stripped. It is a total
// function: any input, including the empty string, yields a (possibly empty)
// result, and the operation is idempotent.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = bracketStripper.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	for _, vendor := range vendorPrefixes {
		if rest, ok := strings.CutPrefix(s, vendor+" "); ok {
			s = rest
			break
		}
	}
	for _, suffix := range genericSuffixes {
		if rest, ok := strings.CutSuffix(s, " "+suffix); ok {
			s = rest
			break
		}
	}
	return s
}

// Variations generates the ordered set of plausible spellings of a GPU name
// to probe against the reference database. The normalized form always comes
// first; callers probing the database must preserve that order. The result
// contains no duplicates. An empty input yields nil.
func Variations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	normalized := Normalize(raw)
	var variations []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variations = append(variations, v)
		}
	}

	add(normalized)
	add(strings.ToLower(strings.TrimSpace(raw)))

	// Re-prefixed forms for each known vendor.
	for _, vendor := range variationVendors {
		if !strings.Contains(normalized, vendor) {
			add(vendor + " " + normalized)
		}
	}

	// Vendor-specific de-prefixed and explicitly branded forms.
	if strings.Contains(normalized, "geforce") {
		add(strings.Replace(normalized, "geforce ", "", 1))
		add("nvidia " + normalized)
	}
	if strings.Contains(normalized, "radeon") {
		add(strings.Replace(normalized, "radeon ", "", 1))
		add("amd " + normalized)
	}
	if strings.Contains(normalized, "arc") {
		add("intel " + normalized)
	}
	if isAppleSilicon(normalized) {
		deprefixed := strings.Replace(normalized, "apple ", "", 1)
		add(deprefixed)
		add("apple " + deprefixed)
	}

	return variations
}

func isAppleSilicon(name string) bool {
	for _, token := range []string{"apple", "m1", "m2", "m3", "m4"} {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// displayWords maps lowercased GPU name tokens to their canonical
// presentation form.
var displayWords = map[string]string{
	"rtx":     "RTX",
	"gtx":     "GTX",
	"rx":      "RX",
	"nvidia":  "NVIDIA",
	"amd":     "AMD",
	"intel":   "Intel",
	"geforce": "GeForce",
	"radeon":  "Radeon",
	"arc":     "Arc",
	"iris":    "Iris",
	"uhd":     "UHD",
	"ti":      "Ti",
	"super":   "SUPER",
	"xtx":     "XTX",
	"xt":      "XT",
}

// FormatName renders a raw GPU identifier for display, capitalizing known
// product tokens (NVIDIA, GeForce, RTX, Ti, ...) and title-casing the rest.
func FormatName(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	for i, word := range words {
		if canonical, ok := displayWords[word]; ok {
			words[i] = canonical
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
