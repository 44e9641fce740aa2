package gpu

import (
	"regexp"
	"strconv"
	"strings"
)

// explicitMemoryPattern extracts an explicit "<N> GB" or "<N> MB" marker from
// a GPU name, e.g. "gtx 1060 6gb".
var explicitMemoryPattern = regexp.MustCompile(`(\d+)\s*(gb|mb)`)

// EstimateBudgetMB returns the memory estimate, in MB, for a GPU that could
// not be resolved against the reference database. The estimate depends only
// on the platform class and performance tier.
func EstimateBudgetMB(platform Platform, tier int) uint64 {
	switch platform {
	case PlatformMobile:
		switch tier {
		case 3:
			return 8192
		case 2:
			return 6144
		case 1:
			return 4096
		default:
			return 2048
		}
	case PlatformIntegrated:
		switch tier {
		case 2:
			return 4096
		case 1:
			return 2048
		default:
			return 1024
		}
	default:
		switch tier {
		case 3:
			return 12288
		case 2:
			return 8192
		case 1:
			return 6144
		default:
			return 4096
		}
	}
}

// EstimateMemory derives the memory description for a reference database
// entry. An explicit "<N> GB|MB" marker in the name wins outright; otherwise
// the estimate is drawn from per-vendor constant tables keyed on platform and
// tier, with generation-aware sub-rules for recent NVIDIA and AMD desktop
// parts. The name is expected to be corpus-normalized (lowercase).
func EstimateMemory(vendor Vendor, platform Platform, tier int, name string) Memory {
	if match := explicitMemoryPattern.FindStringSubmatch(name); match != nil {
		amount, _ := strconv.ParseUint(match[1], 10, 64)
		if match[2] == "gb" {
			amount *= 1024
		}
		if platform == PlatformMobile || platform == PlatformIntegrated {
			memType := "DDR4"
			if platform == PlatformMobile {
				memType = "LPDDR5"
			}
			return Memory{UnifiedMB: amount, Type: memType}
		}
		return Memory{VRAMMB: amount, Type: "GDDR6"}
	}

	switch platform {
	case PlatformMobile:
		return estimateMobileMemory(vendor, tier)
	case PlatformIntegrated:
		switch tier {
		case 2:
			return Memory{UnifiedMB: 4096, Type: "DDR4/DDR5"}
		case 1:
			return Memory{UnifiedMB: 2048, Type: "DDR4/DDR5"}
		default:
			return Memory{UnifiedMB: 1024, Type: "DDR4"}
		}
	default:
		return estimateDesktopMemory(vendor, tier, name)
	}
}

func estimateMobileMemory(vendor Vendor, tier int) Memory {
	switch vendor {
	case VendorApple:
		switch tier {
		case 3:
			return Memory{UnifiedMB: 16384, Type: "Unified"}
		case 2:
			return Memory{UnifiedMB: 8192, Type: "Unified"}
		case 1:
			return Memory{UnifiedMB: 6144, Type: "Unified"}
		default:
			return Memory{UnifiedMB: 4096, Type: "Unified"}
		}
	case VendorQualcomm:
		switch tier {
		case 3:
			return Memory{UnifiedMB: 12288, Type: "LPDDR5"}
		case 2:
			return Memory{UnifiedMB: 8192, Type: "LPDDR5"}
		case 1:
			return Memory{UnifiedMB: 6144, Type: "LPDDR4X"}
		default:
			return Memory{UnifiedMB: 4096, Type: "LPDDR4X"}
		}
	default:
		switch tier {
		case 3:
			return Memory{UnifiedMB: 8192, Type: "LPDDR5"}
		case 2:
			return Memory{UnifiedMB: 6144, Type: "LPDDR5"}
		case 1:
			return Memory{UnifiedMB: 4096, Type: "LPDDR4X"}
		default:
			return Memory{UnifiedMB: 2048, Type: "LPDDR4"}
		}
	}
}

func estimateDesktopMemory(vendor Vendor, tier int, name string) Memory {
	switch vendor {
	case VendorNVIDIA:
		if strings.Contains(name, "rtx 40") {
			switch tier {
			case 3:
				if strings.Contains(name, "4090") {
					return Memory{VRAMMB: 24576, Type: "GDDR6X"}
				}
				if strings.Contains(name, "4080") {
					return Memory{VRAMMB: 16384, Type: "GDDR6X"}
				}
				return Memory{VRAMMB: 12288, Type: "GDDR6X"}
			case 2:
				return Memory{VRAMMB: 8192, Type: "GDDR6"}
			default:
				return Memory{VRAMMB: 6144, Type: "GDDR6"}
			}
		}
		if strings.Contains(name, "rtx 30") {
			switch tier {
			case 3:
				if strings.Contains(name, "3090") {
					return Memory{VRAMMB: 24576, Type: "GDDR6X"}
				}
				if strings.Contains(name, "3080") {
					return Memory{VRAMMB: 10240, Type: "GDDR6X"}
				}
				return Memory{VRAMMB: 8192, Type: "GDDR6X"}
			case 2:
				if strings.Contains(name, "3060") {
					return Memory{VRAMMB: 12288, Type: "GDDR6"}
				}
				return Memory{VRAMMB: 8192, Type: "GDDR6"}
			default:
				return Memory{VRAMMB: 6144, Type: "GDDR6"}
			}
		}
		switch tier {
		case 3:
			return Memory{VRAMMB: 11264, Type: "GDDR5X"}
		case 2:
			return Memory{VRAMMB: 8192, Type: "GDDR5"}
		case 1:
			return Memory{VRAMMB: 6144, Type: "GDDR5"}
		default:
			return Memory{VRAMMB: 4096, Type: "GDDR5"}
		}
	case VendorAMD:
		if strings.Contains(name, "rx 7") {
			switch tier {
			case 3:
				if strings.Contains(name, "7900 xtx") {
					return Memory{VRAMMB: 24576, Type: "GDDR6"}
				}
				if strings.Contains(name, "7900 xt") {
					return Memory{VRAMMB: 20480, Type: "GDDR6"}
				}
				return Memory{VRAMMB: 16384, Type: "GDDR6"}
			case 2:
				return Memory{VRAMMB: 12288, Type: "GDDR6"}
			default:
				return Memory{VRAMMB: 8192, Type: "GDDR6"}
			}
		}
		if strings.Contains(name, "rx 6") {
			switch tier {
			case 3:
				return Memory{VRAMMB: 16384, Type: "GDDR6"}
			case 2:
				if strings.Contains(name, "6600") {
					return Memory{VRAMMB: 8192, Type: "GDDR6"}
				}
				return Memory{VRAMMB: 12288, Type: "GDDR6"}
			default:
				return Memory{VRAMMB: 8192, Type: "GDDR6"}
			}
		}
		switch tier {
		case 3:
			return Memory{VRAMMB: 8192, Type: "GDDR5"}
		case 2:
			return Memory{VRAMMB: 6144, Type: "GDDR5"}
		case 1:
			return Memory{VRAMMB: 4096, Type: "GDDR5"}
		default:
			return Memory{VRAMMB: 2048, Type: "GDDR5"}
		}
	case VendorIntel:
		switch tier {
		case 2:
			if strings.Contains(name, "a770") {
				return Memory{VRAMMB: 16384, Type: "GDDR6"}
			}
			return Memory{VRAMMB: 8192, Type: "GDDR6"}
		case 1:
			return Memory{VRAMMB: 6144, Type: "GDDR6"}
		default:
			return Memory{VRAMMB: 4096, Type: "GDDR6"}
		}
	default:
		switch tier {
		case 3:
			return Memory{VRAMMB: 12288, Type: "GDDR6"}
		case 2:
			return Memory{VRAMMB: 8192, Type: "GDDR6"}
		case 1:
			return Memory{VRAMMB: 6144, Type: "GDDR5"}
		default:
			return Memory{VRAMMB: 4096, Type: "GDDR5"}
		}
	}
}
