package gpu

import "strings"

// The heuristics that infer structure from free-text GPU names are expressed
// as ordered rule tables rather than branching code: each rule pairs a list
// of substring cues with a result, and the first rule with any matching cue
// wins. This keeps the inference data-driven and easy to extend when the
// reference database is regenerated.

type vendorRule struct {
	keywords []string
	vendor   Vendor
}

var vendorRules = []vendorRule{
	{[]string{"nvidia", "geforce", "rtx", "gtx", "quadro", "tesla"}, VendorNVIDIA},
	{[]string{"amd", "radeon", "rx", "ati", "firepro"}, VendorAMD},
	{[]string{"intel", "arc", "iris", "uhd", "hd graphics"}, VendorIntel},
	{[]string{"apple", "m1", "m2", "m3", "m4", "a15", "a16", "a17"}, VendorApple},
	{[]string{"adreno"}, VendorQualcomm},
	{[]string{"mali"}, VendorARM},
	{[]string{"powervr"}, VendorImagination},
	{[]string{"samsung", "xclipse"}, VendorSamsung},
}

// DetectVendor infers the vendor of a GPU from substring cues in its name,
// returning VendorUnknown when no rule matches. The input is expected to be
// lowercased already.
func DetectVendor(name string) Vendor {
	for _, rule := range vendorRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.vendor
			}
		}
	}
	return VendorUnknown
}

type platformRule struct {
	keywords []string
	platform Platform
}

// platformRules is used both by the database builder and by the resolver's
// estimation fallback. Rules are ordered: mobile cues take precedence over
// integrated cues, and everything else is assumed to be a desktop card.
var platformRules = []platformRule{
	{[]string{"mobile", "adreno", "mali", "powervr", "apple a1", "samsung", "xclipse"}, PlatformMobile},
	{[]string{"iris", "uhd", "hd graphics", "integrated"}, PlatformIntegrated},
}

// DetectPlatform infers the platform class of a GPU from substring cues in
// its (lowercased) name, defaulting to desktop.
func DetectPlatform(name string) Platform {
	for _, rule := range platformRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.platform
			}
		}
	}
	// AMD APUs report e.g. "radeon vega 8 graphics" and share system memory.
	if strings.Contains(name, "vega") && strings.Contains(name, "graphics") {
		return PlatformIntegrated
	}
	return PlatformDesktop
}

type labelRule struct {
	keywords []string
	label    string
}

var architectureRules = map[Vendor][]labelRule{
	VendorNVIDIA: {
		{[]string{"rtx 40"}, "Ada Lovelace"},
		{[]string{"rtx 30"}, "Ampere"},
		{[]string{"rtx 20", "gtx 16"}, "Turing"},
		{[]string{"gtx 10"}, "Pascal"},
		{[]string{"gtx 9"}, "Maxwell"},
		{nil, "NVIDIA GPU"},
	},
	VendorAMD: {
		{[]string{"rx 7"}, "RDNA 3"},
		{[]string{"rx 6"}, "RDNA 2"},
		{[]string{"rx 5"}, "RDNA"},
		{[]string{"vega"}, "Vega"},
		{nil, "AMD GPU"},
	},
	VendorIntel: {
		{[]string{"arc"}, "Xe HPG"},
		{[]string{"iris"}, "Xe LP"},
		{[]string{"uhd"}, "Gen 9-12"},
		{nil, "Intel GPU"},
	},
	VendorApple: {
		{[]string{"m4"}, "Apple Silicon M4"},
		{[]string{"m3"}, "Apple Silicon M3"},
		{[]string{"m2"}, "Apple Silicon M2"},
		{[]string{"m1"}, "Apple Silicon M1"},
		{[]string{"a17"}, "Apple A17"},
		{[]string{"a16"}, "Apple A16"},
		{[]string{"a15"}, "Apple A15"},
		{nil, "Apple GPU"},
	},
	VendorQualcomm: {
		{[]string{"adreno 7"}, "Adreno 700"},
		{[]string{"adreno 6"}, "Adreno 600"},
		{[]string{"adreno 5"}, "Adreno 500"},
		{nil, "Adreno GPU"},
	},
	VendorARM: {
		{[]string{"mali-g7"}, "Valhall"},
		{[]string{"mali-g5", "mali-g3"}, "Bifrost"},
		{nil, "Mali GPU"},
	},
}

// DetectArchitecture infers an architecture label for a GPU name, or returns
// an empty string when the vendor has no architecture rules.
func DetectArchitecture(vendor Vendor, name string) string {
	rules, ok := architectureRules[vendor]
	if !ok {
		return ""
	}
	for _, rule := range rules {
		if rule.keywords == nil {
			return rule.label
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.label
			}
		}
	}
	return ""
}

type yearRule struct {
	keywords []string
	year     int
}

var yearRules = map[Vendor][]yearRule{
	VendorNVIDIA: {
		{[]string{"rtx 40"}, 2022},
		{[]string{"rtx 30"}, 2020},
		{[]string{"rtx 20"}, 2018},
		{[]string{"gtx 16"}, 2019},
		{[]string{"gtx 10"}, 2016},
	},
	VendorAMD: {
		{[]string{"rx 7"}, 2022},
		{[]string{"rx 6"}, 2020},
		{[]string{"rx 5"}, 2019},
	},
	VendorApple: {
		{[]string{"m4"}, 2024},
		{[]string{"m3"}, 2023},
		{[]string{"m2"}, 2022},
		{[]string{"m1"}, 2020},
		{[]string{"a17"}, 2023},
		{[]string{"a16"}, 2022},
		{[]string{"a15"}, 2021},
	},
}

// DetectYear infers an approximate release year for a GPU name, or returns 0
// when no rule matches.
func DetectYear(vendor Vendor, name string) int {
	for _, rule := range yearRules[vendor] {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.year
			}
		}
	}
	return 0
}
